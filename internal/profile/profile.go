// Package profile models WebXR input-profile descriptions: per-handedness
// layouts of components and the visual responses a model should show for
// each of them.
package profile

import (
	"sort"
	"strings"
)

// Component types a layout may declare.
const (
	TypeTrigger    = "trigger"
	TypeSqueeze    = "squeeze"
	TypeTouchpad   = "touchpad"
	TypeThumbstick = "thumbstick"
	TypeButton     = "button"
)

// Visual response property kinds.
const (
	PropertyVisibility = "visibility"
	PropertyTransform  = "transform"
)

// Component properties a visual response may be driven by.
const (
	SourceButton = "button"
	SourceXAxis  = "xAxis"
	SourceYAxis  = "yAxis"
	SourceState  = "state"
)

// Profile describes one device family.
type Profile struct {
	ProfileID string             `json:"profileId"`
	Layouts   map[string]*Layout `json:"layouts"`
}

// Layout is the per-handedness view of a profile.
type Layout struct {
	Mapping      string                `json:"mapping,omitempty"`
	RootNodeName string                `json:"rootNodeName,omitempty"`
	AssetPath    string                `json:"assetPath,omitempty"`
	Components   map[string]*Component `json:"components"`
}

// Component declares one controllable element and its visual responses.
type Component struct {
	Type               string                     `json:"type"`
	RootNodeName       string                     `json:"rootNodeName"`
	TouchPointNodeName string                     `json:"touchPointNodeName,omitempty"`
	GamepadIndices     GamepadIndices             `json:"gamepadIndices"`
	VisualResponses    map[string]*VisualResponse `json:"visualResponses"`
}

// GamepadIndices maps a component onto gamepad button/axis slots. Each
// index is optional; nil means the component does not use that slot.
type GamepadIndices struct {
	Button *int `json:"button,omitempty"`
	XAxis  *int `json:"xAxis,omitempty"`
	YAxis  *int `json:"yAxis,omitempty"`
}

// VisualResponse declares how one input value maps onto the model.
// MinNodeName and MaxNodeName are only meaningful for transform responses.
type VisualResponse struct {
	ComponentProperty string `json:"componentProperty,omitempty"`
	RootNodeName      string `json:"rootNodeName"`
	TargetNodeName    string `json:"targetNodeName"`
	Property          string `json:"property"`
	MinNodeName       string `json:"minNodeName,omitempty"`
	MaxNodeName       string `json:"maxNodeName,omitempty"`
}

// LayoutFor selects the layout matching a handedness. Registry files key
// layouts either by a single handedness ("left") or a combined key
// ("left-right-none"); both forms match here.
func (p *Profile) LayoutFor(handedness string) *Layout {
	if l, ok := p.Layouts[handedness]; ok {
		return l
	}
	for key, l := range p.Layouts {
		for _, part := range strings.Split(key, "-") {
			if part == handedness {
				return l
			}
		}
	}
	return nil
}

// Handednesses lists the handednesses the profile declares layouts for,
// combined keys expanded, deduplicated and sorted.
func (p *Profile) Handednesses() []string {
	seen := make(map[string]bool)
	var out []string
	for key := range p.Layouts {
		for _, hand := range strings.Split(key, "-") {
			if hand == "" || seen[hand] {
				continue
			}
			seen[hand] = true
			out = append(out, hand)
		}
	}
	sort.Strings(out)
	return out
}
