package hub

import (
	"encoding/json"
	"time"

	"github.com/Artyom17/webxr-input-profiles/internal/profile"
	"github.com/Artyom17/webxr-input-profiles/internal/scene"
	"github.com/Artyom17/webxr-input-profiles/internal/viewer"
)

// ServerMessage is a WebSocket message sent from server to client.
type ServerMessage struct {
	Type      string `json:"type"` // "full", "frame", "profiles", "profile", "model", "error"
	Seq       int64  `json:"seq"`
	Timestamp int64  `json:"timestamp"`

	Nodes    []scene.State            `json:"nodes,omitempty"`    // "full" and "frame"
	Profiles []ProfileSummary         `json:"profiles,omitempty"` // "profiles"
	Profile  *ProfileInfo             `json:"profile,omitempty"`  // "profile"
	Markers  []viewer.MarkerPlacement `json:"markers,omitempty"`  // "model"
	Error    string                   `json:"error,omitempty"`    // "error"
}

// ProfileSummary names one loadable profile and the handednesses it has
// layouts for, so the frontend only offers selectable combinations.
type ProfileSummary struct {
	ProfileID    string   `json:"profileId"`
	Handednesses []string `json:"handednesses"`
}

// ProfileInfo is the client-facing summary of a selected profile, enough
// for the frontend to build its manual controls.
type ProfileInfo struct {
	ProfileID  string                   `json:"profileId"`
	Handedness string                   `json:"handedness"`
	AssetPath  string                   `json:"assetPath,omitempty"`
	Components map[string]ComponentInfo `json:"components"`
}

// ComponentInfo summarizes one component for the frontend.
type ComponentInfo struct {
	Type           string                 `json:"type"`
	GamepadIndices profile.GamepadIndices `json:"gamepadIndices"`
}

// NewFullMessage creates a "full" message carrying the complete bound-node state.
func NewFullMessage(seq int64, nodes []scene.State) *ServerMessage {
	return &ServerMessage{
		Type:      "full",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Nodes:     nodes,
	}
}

// NewFrameMessage creates a "frame" message carrying only the nodes that
// changed this tick.
func NewFrameMessage(seq int64, nodes []scene.State) *ServerMessage {
	return &ServerMessage{
		Type:      "frame",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Nodes:     nodes,
	}
}

// NewProfilesMessage lists the available profiles.
func NewProfilesMessage(profiles []ProfileSummary) *ServerMessage {
	return &ServerMessage{
		Type:      "profiles",
		Timestamp: time.Now().UnixMilli(),
		Profiles:  profiles,
	}
}

// NewProfileMessage confirms a profile selection.
func NewProfileMessage(info *ProfileInfo) *ServerMessage {
	return &ServerMessage{
		Type:      "profile",
		Timestamp: time.Now().UnixMilli(),
		Profile:   info,
	}
}

// NewModelMessage confirms a model load and reports the attached markers.
func NewModelMessage(markers []viewer.MarkerPlacement) *ServerMessage {
	return &ServerMessage{
		Type:      "model",
		Timestamp: time.Now().UnixMilli(),
		Markers:   markers,
	}
}

// NewErrorMessage reports a failed client command.
func NewErrorMessage(err error) *ServerMessage {
	return &ServerMessage{
		Type:      "error",
		Timestamp: time.Now().UnixMilli(),
		Error:     err.Error(),
	}
}

// ClientMessage is a command sent from the client to the server.
type ClientMessage struct {
	Type        string          `json:"type"` // "select", "model", "input", "clear"
	ProfileID   string          `json:"profileId,omitempty"`
	Handedness  string          `json:"handedness,omitempty"`
	ComponentID string          `json:"componentId,omitempty"`
	Input       *viewer.Input   `json:"input,omitempty"`
	Nodes       json.RawMessage `json:"nodes,omitempty"`
}
