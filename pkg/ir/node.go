package ir

// Node is one element of a screen tree. A node exclusively owns its children;
// there are no parent pointers and no sharing, so the tree is acyclic and all
// traversal is top-down in stored child order.
//
// ID is advisory. Emitters derive stable identifiers from it and deduplicate
// per screen, so it does not need to be globally unique.
type Node struct {
	Kind       Kind              `json:"type"`
	ID         string            `json:"id,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
	Style      map[string]string `json:"style,omitempty"`
	Children   []*Node           `json:"children,omitempty"`
}

// NewNode constructs a node of the given kind with allocated property and
// style maps so extractors can assign without nil checks.
func NewNode(kind Kind, id string) *Node {
	return &Node{
		Kind:       kind,
		ID:         id,
		Properties: make(map[string]string),
		Style:      make(map[string]string),
	}
}

// AddChild appends child to n, preserving insertion order.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
}

// Walk visits n and every descendant depth-first, children in stored order.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil || visit == nil {
		return
	}
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// Count returns the number of nodes in the subtree rooted at n, including n.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 0
	n.Walk(func(*Node) { total++ })
	return total
}

// Property returns the named property or fallback when absent.
func (n *Node) Property(name, fallback string) string {
	if n == nil {
		return fallback
	}
	if value, ok := n.Properties[name]; ok && value != "" {
		return value
	}
	return fallback
}
