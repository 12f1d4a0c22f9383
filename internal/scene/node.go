package scene

// Vec3 is a position in model space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Quat is an orientation quaternion.
type Quat struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// Identity is the neutral orientation.
var Identity = Quat{W: 1}

// Node is one element of the loaded model's hierarchy. Visible, Position
// and Orientation are mutated by the update loop; the renderer on the
// other end of the wire mirrors them onto its own scene graph by name.
type Node struct {
	Name        string  `json:"name"`
	Visible     bool    `json:"visible"`
	Position    Vec3    `json:"position"`
	Orientation Quat    `json:"orientation"`
	Marker      bool    `json:"marker,omitempty"`
	Children    []*Node `json:"children,omitempty"`

	parent *Node
}

// Parent returns the node's parent, nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// State is a flat snapshot of a node's mutable fields, keyed by name.
type State struct {
	Name        string `json:"name"`
	Visible     bool   `json:"visible"`
	Position    Vec3   `json:"position"`
	Orientation Quat   `json:"orientation"`
	Marker      bool   `json:"marker,omitempty"`
}

// Snapshot captures the node's current mutable state.
func (n *Node) Snapshot() State {
	return State{
		Name:        n.Name,
		Visible:     n.Visible,
		Position:    n.Position,
		Orientation: n.Orientation,
		Marker:      n.Marker,
	}
}
