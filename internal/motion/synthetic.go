package motion

import (
	"errors"
	"fmt"

	"github.com/Artyom17/webxr-input-profiles/internal/profile"
)

// GamepadButton mirrors the shape of one Gamepad API button.
type GamepadButton struct {
	Value   float64 `json:"value"`
	Touched bool    `json:"touched"`
	Pressed bool    `json:"pressed"`
}

// SyntheticGamepad is a structurally faithful stand-in for a hardware
// gamepad, sized from a profile's gamepad-index mapping. Arrays always have
// at least one slot, even when no component references a button or axis;
// real devices expose at least one of each.
type SyntheticGamepad struct {
	ID      string          `json:"id"`
	Buttons []GamepadButton `json:"buttons"`
	Axes    []float64       `json:"axes"`
}

// NewGamepad builds a synthetic gamepad for one handedness of a profile.
// Array lengths cover the highest button/axis index any component declares.
func NewGamepad(p *profile.Profile, handedness string) (*SyntheticGamepad, error) {
	if p == nil {
		return nil, errors.New("synthetic gamepad: no profile supplied")
	}
	if handedness == "" {
		return nil, errors.New("synthetic gamepad: no handedness supplied")
	}
	layout := p.LayoutFor(handedness)
	if layout == nil {
		return nil, fmt.Errorf("synthetic gamepad: profile %q has no %q layout", p.ProfileID, handedness)
	}

	maxButton, maxAxis := 0, 0
	for _, c := range layout.Components {
		if idx := c.GamepadIndices.Button; idx != nil && *idx > maxButton {
			maxButton = *idx
		}
		if idx := c.GamepadIndices.XAxis; idx != nil && *idx > maxAxis {
			maxAxis = *idx
		}
		if idx := c.GamepadIndices.YAxis; idx != nil && *idx > maxAxis {
			maxAxis = *idx
		}
	}

	return &SyntheticGamepad{
		ID:      p.ProfileID,
		Buttons: make([]GamepadButton, maxButton+1),
		Axes:    make([]float64, maxAxis+1),
	}, nil
}

// SetButton writes one button slot. Out-of-range indexes are rejected.
func (g *SyntheticGamepad) SetButton(index int, value float64, touched, pressed bool) error {
	if index < 0 || index >= len(g.Buttons) {
		return fmt.Errorf("synthetic gamepad: button index %d out of range [0,%d)", index, len(g.Buttons))
	}
	g.Buttons[index] = GamepadButton{Value: value, Touched: touched, Pressed: pressed}
	return nil
}

// SetAxis writes one axis slot. Out-of-range indexes are rejected.
func (g *SyntheticGamepad) SetAxis(index int, value float64) error {
	if index < 0 || index >= len(g.Axes) {
		return fmt.Errorf("synthetic gamepad: axis index %d out of range [0,%d)", index, len(g.Axes))
	}
	g.Axes[index] = value
	return nil
}

// InputSource wraps a gamepad with the handedness and profile-id list a
// real XR input source would present.
type InputSource struct {
	Gamepad    *SyntheticGamepad `json:"gamepad"`
	Handedness string            `json:"handedness"`
	Profiles   []string          `json:"profiles"`
}

// NewInputSource wraps gamepad for one hand. The profile-id list is derived
// from the gamepad's identity, matching the shape of a real source.
func NewInputSource(gamepad *SyntheticGamepad, handedness string) (*InputSource, error) {
	if handedness == "" {
		return nil, errors.New("input source: no handedness supplied")
	}
	return &InputSource{
		Gamepad:    gamepad,
		Handedness: handedness,
		Profiles:   []string{gamepad.ID},
	}, nil
}
