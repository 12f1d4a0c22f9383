package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLayoutFor(t *testing.T) {
	p := &Profile{
		ProfileID: "test",
		Layouts: map[string]*Layout{
			"left-right-none": {Mapping: "xr-standard"},
		},
	}

	for _, hand := range []string{"left", "right", "none"} {
		assert.NotNil(t, p.LayoutFor(hand), hand)
	}
	assert.Nil(t, p.LayoutFor("middle"))

	// Exact keys win over combined ones.
	exact := &Layout{Mapping: "exact"}
	p.Layouts["left"] = exact
	assert.Equal(t, exact, p.LayoutFor("left"))
}

func TestHandednesses(t *testing.T) {
	p := &Profile{
		ProfileID: "test",
		Layouts: map[string]*Layout{
			"left-right-none": {},
			"right":           {},
		},
	}
	// Combined keys split, duplicates collapse, order is stable.
	assert.Equal(t, []string{"left", "none", "right"}, p.Handednesses())
}

func TestLoadDir(t *testing.T) {
	r, err := LoadDir("testdata", zap.NewNop())
	require.NoError(t, err)

	// broken.json and no-id.json are skipped, not fatal.
	assert.Equal(t, []string{"generic-trigger-touchpad"}, r.IDs())

	p := r.Get("generic-trigger-touchpad")
	require.NotNil(t, p)
	assert.Nil(t, r.Get("unknown"))

	layout := p.LayoutFor("right")
	require.NotNil(t, layout)
	require.Contains(t, layout.Components, "xr-standard-touchpad")

	touchpad := layout.Components["xr-standard-touchpad"]
	assert.Equal(t, TypeTouchpad, touchpad.Type)
	assert.Equal(t, "xr_standard_touchpad_touchpoint", touchpad.TouchPointNodeName)
	require.NotNil(t, touchpad.GamepadIndices.Button)
	assert.Equal(t, 1, *touchpad.GamepadIndices.Button)
	require.Contains(t, touchpad.VisualResponses, "xr_standard_touchpad_touched")
	assert.Equal(t, PropertyVisibility, touchpad.VisualResponses["xr_standard_touchpad_touched"].Property)
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir("testdata/does-not-exist", zap.NewNop())
	assert.Error(t, err)
}
