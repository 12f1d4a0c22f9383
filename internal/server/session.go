package server

import (
	"encoding/json"
	"fmt"

	"github.com/Artyom17/webxr-input-profiles/internal/hub"
	"github.com/Artyom17/webxr-input-profiles/internal/motion"
	"github.com/Artyom17/webxr-input-profiles/internal/profile"
	"github.com/Artyom17/webxr-input-profiles/internal/scene"
	"github.com/Artyom17/webxr-input-profiles/internal/viewer"
)

// Session wires client commands onto the process-wide viewer: profile
// selection builds a synthetic gamepad plus controller, model loads decode
// the renderer's node hierarchy, input updates land on the gamepad. All
// clients share the one viewer, so every browser tab shows the same state.
type Session struct {
	registry *profile.Registry
	viewer   *viewer.Viewer
}

func NewSession(registry *profile.Registry, v *viewer.Viewer) *Session {
	return &Session{registry: registry, viewer: v}
}

// Profiles lists the loadable profiles with the handednesses each one
// declares layouts for.
func (s *Session) Profiles() []hub.ProfileSummary {
	ids := s.registry.IDs()
	out := make([]hub.ProfileSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, hub.ProfileSummary{
			ProfileID:    id,
			Handednesses: s.registry.Get(id).Handednesses(),
		})
	}
	return out
}

// SelectProfile activates one handedness of a profile: a synthetic gamepad
// sized from the profile, an input source wrapping it, and a controller
// reading from it. Any loaded model is dropped; the renderer re-sends it.
func (s *Session) SelectProfile(profileID, handedness string) (*hub.ProfileInfo, error) {
	p := s.registry.Get(profileID)
	if p == nil {
		return nil, fmt.Errorf("unknown profile %q", profileID)
	}

	gamepad, err := motion.NewGamepad(p, handedness)
	if err != nil {
		return nil, err
	}
	source, err := motion.NewInputSource(gamepad, handedness)
	if err != nil {
		return nil, err
	}
	controller, err := motion.NewController(p, handedness, source)
	if err != nil {
		return nil, err
	}
	s.viewer.SetController(controller)

	layout := p.LayoutFor(handedness)
	info := &hub.ProfileInfo{
		ProfileID:  profileID,
		Handedness: handedness,
		AssetPath:  layout.AssetPath,
		Components: make(map[string]hub.ComponentInfo, len(layout.Components)),
	}
	for id, c := range layout.Components {
		info.Components[id] = hub.ComponentInfo{
			Type:           c.Type,
			GamepadIndices: c.GamepadIndices,
		}
	}
	return info, nil
}

// LoadModel decodes the renderer's node hierarchy and binds the active
// profile onto it.
func (s *Session) LoadModel(nodes json.RawMessage) ([]viewer.MarkerPlacement, error) {
	sc, err := scene.Decode(nodes)
	if err != nil {
		return nil, err
	}
	return s.viewer.LoadModel(sc)
}

// SetInput routes a manual-control update to the viewer.
func (s *Session) SetInput(componentID string, in viewer.Input) error {
	return s.viewer.SetInput(componentID, in)
}

// Clear drops the loaded model.
func (s *Session) Clear() {
	s.viewer.Clear()
}
