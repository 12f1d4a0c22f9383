package binding

import (
	"testing"

	"github.com/Artyom17/webxr-input-profiles/internal/motion"
	"github.com/Artyom17/webxr-input-profiles/internal/profile"
	"github.com/Artyom17/webxr-input-profiles/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func touchpadComponent(root, touchPoint string) *motion.Component {
	return &motion.Component{
		ID:                 "xr-standard-touchpad",
		Type:               profile.TypeTouchpad,
		RootNodeName:       root,
		TouchPointNodeName: touchPoint,
	}
}

func TestAttachTouchMarkers(t *testing.T) {
	sc := resolverScene()
	components := map[string]*motion.Component{
		"xr-standard-touchpad": touchpadComponent("touchpad", "touchpoint"),
	}

	AttachTouchMarkers(sc, components, zap.NewNop())

	touchPoint := sc.Find("touchpoint")
	require.Len(t, touchPoint.Children, 1)

	dot := touchPoint.Children[0]
	assert.Equal(t, TouchDotName, dot.Name)
	assert.True(t, dot.Marker)
	assert.True(t, dot.Visible)
	assert.Equal(t, scene.Identity, dot.Orientation)

	// Attachment registers the marker in the scene index.
	assert.Equal(t, dot, sc.FindUnder(sc.Find("touchpad"), TouchDotName))
}

func TestAttachTouchMarkersMissingTouchPoint(t *testing.T) {
	sc := resolverScene()
	root := sc.Find("touchpad")
	before := countNodes(root)

	components := map[string]*motion.Component{
		"xr-standard-touchpad": touchpadComponent("touchpad", "missing_touchpoint"),
	}
	AttachTouchMarkers(sc, components, zap.NewNop())

	assert.Equal(t, before, countNodes(root), "scene must be left untouched")
}

func TestAttachTouchMarkersMissingRoot(t *testing.T) {
	sc := resolverScene()
	before := countNodes(sc.Root)

	components := map[string]*motion.Component{
		"xr-standard-touchpad": touchpadComponent("missing_root", "touchpoint"),
	}
	AttachTouchMarkers(sc, components, zap.NewNop())

	assert.Equal(t, before, countNodes(sc.Root))
}

func TestAttachTouchMarkersIgnoresOtherTypes(t *testing.T) {
	sc := resolverScene()
	before := countNodes(sc.Root)

	components := map[string]*motion.Component{
		"trigger": {
			ID:                 "trigger",
			Type:               profile.TypeTrigger,
			RootNodeName:       "trigger",
			TouchPointNodeName: "trigger_value",
		},
	}
	AttachTouchMarkers(sc, components, zap.NewNop())

	assert.Equal(t, before, countNodes(sc.Root))
}

func countNodes(n *scene.Node) int {
	total := 1
	for _, c := range n.Children {
		total += countNodes(c)
	}
	return total
}
