package dom

// Node is a concrete Element for hosts that keep their own element tree
// (terminal renderers, tests). Containment follows parent links.
type Node struct {
	ID      string
	Rect    Rect
	parent  *Node
	OnFocus func()
}

// NewNode creates a detached node with the given id and bounds.
func NewNode(id string, rect Rect) *Node {
	return &Node{ID: id, Rect: rect}
}

// AppendChild attaches child to n and returns the child.
func (n *Node) AppendChild(child *Node) *Node {
	child.parent = n
	return child
}

// Bounds returns the node's bounding box.
func (n *Node) Bounds() Rect {
	return n.Rect
}

// Contains reports whether other is n itself or a descendant of n.
func (n *Node) Contains(other Element) bool {
	node, ok := other.(*Node)
	if !ok {
		return false
	}
	for cur := node; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Focus invokes the node's focus callback if one is set.
func (n *Node) Focus() {
	if n.OnFocus != nil {
		n.OnFocus()
	}
}
