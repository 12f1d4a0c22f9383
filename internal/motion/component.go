// Package motion is the component-value side of the viewer: runtime
// components built from a profile layout, a controller that refreshes
// their visual-response values from a gamepad snapshot, and a synthetic
// gamepad/input-source pair that stands in for real hardware.
package motion

import "github.com/Artyom17/webxr-input-profiles/internal/profile"

// VisualResponse pairs a declared response with its live value. Value
// drives transform responses (intended unit range, not clamped); Visible
// drives visibility responses.
type VisualResponse struct {
	Desc    *profile.VisualResponse
	Value   float64
	Visible bool
}

// Component is the runtime view of one declared component. Responses are
// keyed by the response's root node name, the per-component namespace the
// binding table uses.
type Component struct {
	ID                 string
	Type               string
	RootNodeName       string
	TouchPointNodeName string
	GamepadIndices     profile.GamepadIndices
	Responses          map[string]*VisualResponse
}

func newComponent(id string, desc *profile.Component) *Component {
	c := &Component{
		ID:                 id,
		Type:               desc.Type,
		RootNodeName:       desc.RootNodeName,
		TouchPointNodeName: desc.TouchPointNodeName,
		GamepadIndices:     desc.GamepadIndices,
		Responses:          make(map[string]*VisualResponse, len(desc.VisualResponses)),
	}
	for _, vr := range desc.VisualResponses {
		c.Responses[vr.RootNodeName] = &VisualResponse{Desc: vr}
	}
	return c
}
