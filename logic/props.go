package logic

// Props is a flat set of rendering attributes produced by an a11y generator.
// Values follow native HTML attribute conventions: ARIA states are the string
// "true" when set and absent otherwise, except where a numeric value is the
// convention (aria-valuenow and friends).
type Props map[string]any

// SetState records a boolean ARIA state: present as "true" when on, absent
// otherwise.
func (p Props) SetState(name string, on bool) {
	if on {
		p[name] = "true"
	}
}

// SetFlag records a boolean ARIA attribute that serializes both states, such
// as aria-expanded and aria-checked on interactive widgets.
func (p Props) SetFlag(name string, on bool) {
	if on {
		p[name] = "true"
	} else {
		p[name] = "false"
	}
}
