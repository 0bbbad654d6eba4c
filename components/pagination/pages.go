package pagination

// Entry is one slot in a rendered page sequence: either a page number or an
// ellipsis gap marker.
type Entry struct {
	Page     int
	Ellipsis bool
}

// Page returns a number entry.
func Page(n int) Entry {
	return Entry{Page: n}
}

// Ellipsis is the gap marker entry.
var Ellipsis = Entry{Ellipsis: true}

// PageNumbers produces the display sequence for a pager: the first and last
// page always, siblingCount pages on each side of current, and an ellipsis
// wherever a gap remains between shown pages. When siblingCount*2+5 meets or
// exceeds total, every page is shown and no ellipsis appears.
func PageNumbers(current, total, siblingCount int) []Entry {
	if total < 1 {
		total = 1
	}
	if siblingCount < 0 {
		siblingCount = 0
	}

	if siblingCount*2+5 >= total {
		all := make([]Entry, total)
		for i := range all {
			all[i] = Page(i + 1)
		}
		return all
	}

	current = clamp(current, 1, total)
	left := clamp(current-siblingCount, 1, total)
	right := clamp(current+siblingCount, 1, total)

	shown := []int{1}
	for p := left; p <= right; p++ {
		if p > 1 && p < total {
			shown = append(shown, p)
		}
	}
	shown = append(shown, total)

	var out []Entry
	prev := 0
	for _, p := range shown {
		if prev != 0 && p-prev > 1 {
			out = append(out, Ellipsis)
		}
		out = append(out, Page(p))
		prev = p
	}
	return out
}
