// Package binding resolves a profile's declared visual responses onto a
// loaded scene's named nodes and applies live values to them.
package binding

import (
	"github.com/Artyom17/webxr-input-profiles/internal/motion"
	"github.com/Artyom17/webxr-input-profiles/internal/scene"
)

// Table maps componentId, then the response's root node name, to its
// resolved binding. An entry exists only if every node the response needs
// was found; responses that failed resolution are simply absent.
type Table map[string]map[string]Binding

// Get returns the binding for one component/response pair, nil if the
// response never resolved.
func (t Table) Get(componentID, responseRoot string) Binding {
	return t[componentID][responseRoot]
}

// Binding is a resolved visual response. The two cases carry exactly the
// nodes they need: a transform binding cannot exist without its extremes.
type Binding interface {
	// Apply writes the response's current value onto the target node.
	Apply(r *motion.VisualResponse)
	// Target returns the node the binding mutates.
	Target() *scene.Node

	sealed()
}

// Visibility toggles the target node's visible flag.
type Visibility struct {
	Root       *scene.Node
	TargetNode *scene.Node
}

func (b *Visibility) Apply(r *motion.VisualResponse) {
	b.TargetNode.Visible = r.Visible
}

func (b *Visibility) Target() *scene.Node { return b.TargetNode }
func (*Visibility) sealed()               {}

// Transform poses the target node between two extremes. Orientation is
// slerped and position lerped with the same parameter; the parameter is
// not clamped, so out-of-range values extrapolate.
type Transform struct {
	Root       *scene.Node
	TargetNode *scene.Node
	MinNode    *scene.Node
	MaxNode    *scene.Node
}

func (b *Transform) Apply(r *motion.VisualResponse) {
	b.TargetNode.Orientation = scene.Slerp(b.MinNode.Orientation, b.MaxNode.Orientation, r.Value)
	b.TargetNode.Position = scene.Lerp(b.MinNode.Position, b.MaxNode.Position, r.Value)
}

func (b *Transform) Target() *scene.Node { return b.TargetNode }
func (*Transform) sealed()               {}
