package motion

import (
	"errors"
	"fmt"

	"github.com/Artyom17/webxr-input-profiles/internal/profile"
)

// Controller is the component-value provider: it owns the runtime
// components for one handedness of a profile and refreshes their response
// values from the input source's gamepad snapshot.
type Controller struct {
	ProfileID  string
	Handedness string
	Components map[string]*Component

	source *InputSource
}

// NewController builds the runtime components for one handedness.
func NewController(p *profile.Profile, handedness string, source *InputSource) (*Controller, error) {
	if p == nil {
		return nil, errors.New("controller: no profile supplied")
	}
	if source == nil {
		return nil, errors.New("controller: no input source supplied")
	}
	layout := p.LayoutFor(handedness)
	if layout == nil {
		return nil, fmt.Errorf("controller: profile %q has no %q layout", p.ProfileID, handedness)
	}

	c := &Controller{
		ProfileID:  p.ProfileID,
		Handedness: handedness,
		Components: make(map[string]*Component, len(layout.Components)),
		source:     source,
	}
	for id, desc := range layout.Components {
		c.Components[id] = newComponent(id, desc)
	}
	return c, nil
}

// Source returns the input source the controller reads from.
func (c *Controller) Source() *InputSource { return c.source }

// Refresh pulls the current gamepad snapshot into every component's
// visual-response values. Synchronous; called once per frame.
func (c *Controller) Refresh() {
	gp := c.source.Gamepad
	for _, comp := range c.Components {
		var button GamepadButton
		if idx := comp.GamepadIndices.Button; idx != nil && *idx < len(gp.Buttons) {
			button = gp.Buttons[*idx]
		}
		var xAxis, yAxis float64
		if idx := comp.GamepadIndices.XAxis; idx != nil && *idx < len(gp.Axes) {
			xAxis = gp.Axes[*idx]
		}
		if idx := comp.GamepadIndices.YAxis; idx != nil && *idx < len(gp.Axes) {
			yAxis = gp.Axes[*idx]
		}
		active := button.Touched || button.Pressed || button.Value > 0

		for _, resp := range comp.Responses {
			switch resp.Desc.ComponentProperty {
			case profile.SourceXAxis:
				// Axes run -1..1; transform responses expect 0..1.
				resp.Value = (xAxis + 1) / 2
			case profile.SourceYAxis:
				resp.Value = (yAxis + 1) / 2
			case profile.SourceState:
				if button.Pressed {
					resp.Value = 1
				} else {
					resp.Value = 0
				}
			default: // SourceButton and unspecified
				resp.Value = button.Value
			}
			resp.Visible = active
		}
	}
}
