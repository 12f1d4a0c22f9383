package server

import (
	"encoding/json"
	"testing"

	"github.com/Artyom17/webxr-input-profiles/internal/hub"
	"github.com/Artyom17/webxr-input-profiles/internal/profile"
	"github.com/Artyom17/webxr-input-profiles/internal/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testModel = `{
	"name": "root",
	"visible": true,
	"orientation": {"w": 1},
	"children": [
		{
			"name": "trigger",
			"visible": true,
			"orientation": {"w": 1},
			"children": [
				{"name": "trigger_value", "visible": true, "orientation": {"w": 1}},
				{"name": "trigger_min", "visible": true, "orientation": {"w": 1}},
				{"name": "trigger_max", "visible": true, "position": {"z": -0.01}, "orientation": {"w": 1}}
			]
		}
	]
}`

func newTestSession(t *testing.T) *Session {
	t.Helper()
	registry, err := profile.LoadDir("testdata", zap.NewNop())
	require.NoError(t, err)
	return NewSession(registry, viewer.New(zap.NewNop()))
}

func TestSessionProfiles(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, []hub.ProfileSummary{
		{ProfileID: "test-trigger", Handednesses: []string{"left", "right"}},
	}, s.Profiles())
}

func TestSessionSelectProfile(t *testing.T) {
	s := newTestSession(t)

	info, err := s.SelectProfile("test-trigger", "right")
	require.NoError(t, err)
	assert.Equal(t, "test-trigger", info.ProfileID)
	assert.Equal(t, "right", info.Handedness)
	require.Contains(t, info.Components, "xr-standard-trigger")
	assert.Equal(t, "trigger", info.Components["xr-standard-trigger"].Type)

	_, err = s.SelectProfile("nope", "right")
	assert.Error(t, err)
	_, err = s.SelectProfile("test-trigger", "none")
	assert.Error(t, err, "profile has no layout for this handedness")
}

func TestSessionRoundTrip(t *testing.T) {
	s := newTestSession(t)

	// Model load before profile selection fails.
	_, err := s.LoadModel(json.RawMessage(testModel))
	assert.Error(t, err)

	_, err = s.SelectProfile("test-trigger", "right")
	require.NoError(t, err)

	markers, err := s.LoadModel(json.RawMessage(testModel))
	require.NoError(t, err)
	assert.Empty(t, markers, "no touchpad, no markers")

	value := 1.0
	require.NoError(t, s.SetInput("xr-standard-trigger", viewer.Input{Button: &value}))
	assert.Error(t, s.SetInput("unknown", viewer.Input{Button: &value}))

	s.Clear()
	_, err = s.LoadModel(json.RawMessage(`{"bad":`))
	assert.Error(t, err)
}
