package viewer

import (
	"math"
	"testing"

	"github.com/Artyom17/webxr-input-profiles/internal/motion"
	"github.com/Artyom17/webxr-input-profiles/internal/profile"
	"github.com/Artyom17/webxr-input-profiles/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

func testProfile() *profile.Profile {
	return &profile.Profile{
		ProfileID: "viewer-test",
		Layouts: map[string]*profile.Layout{
			"right": {
				Components: map[string]*profile.Component{
					"xr-standard-trigger": {
						Type:           profile.TypeTrigger,
						RootNodeName:   "trigger",
						GamepadIndices: profile.GamepadIndices{Button: intPtr(0)},
						VisualResponses: map[string]*profile.VisualResponse{
							"trigger": {
								ComponentProperty: profile.SourceButton,
								RootNodeName:      "trigger",
								TargetNodeName:    "trigger_value",
								Property:          profile.PropertyTransform,
								MinNodeName:       "trigger_min",
								MaxNodeName:       "trigger_max",
							},
						},
					},
					"xr-standard-touchpad": {
						Type:               profile.TypeTouchpad,
						RootNodeName:       "touchpad",
						TouchPointNodeName: "touchpoint",
						GamepadIndices:     profile.GamepadIndices{Button: intPtr(1)},
						VisualResponses: map[string]*profile.VisualResponse{
							"touchpad": {
								ComponentProperty: profile.SourceState,
								RootNodeName:      "touchpad",
								TargetNodeName:    "touchpoint",
								Property:          profile.PropertyVisibility,
							},
						},
					},
				},
			},
		},
	}
}

func zRotation(angle float64) scene.Quat {
	return scene.Quat{Z: math.Sin(angle / 2), W: math.Cos(angle / 2)}
}

var (
	minPose = scene.Vec3{}
	maxPose = scene.Vec3{X: 0, Y: -0.004, Z: -0.01}
	minRot  = zRotation(0)
	maxRot  = zRotation(math.Pi / 3)
)

func testScene() *scene.Scene {
	return scene.New(&scene.Node{
		Name:        "root",
		Visible:     true,
		Orientation: scene.Identity,
		Children: []*scene.Node{
			{
				Name:        "trigger",
				Visible:     true,
				Orientation: scene.Identity,
				Children: []*scene.Node{
					{Name: "trigger_value", Visible: true, Orientation: scene.Identity},
					{Name: "trigger_min", Visible: true, Position: minPose, Orientation: minRot},
					{Name: "trigger_max", Visible: true, Position: maxPose, Orientation: maxRot},
				},
			},
			{
				Name:        "touchpad",
				Visible:     true,
				Orientation: scene.Identity,
				Children: []*scene.Node{
					{Name: "touchpoint", Visible: true, Orientation: scene.Identity},
				},
			},
		},
	})
}

func newTestViewer(t *testing.T) (*Viewer, *scene.Scene) {
	t.Helper()
	p := testProfile()
	gp, err := motion.NewGamepad(p, "right")
	require.NoError(t, err)
	src, err := motion.NewInputSource(gp, "right")
	require.NoError(t, err)
	ctrl, err := motion.NewController(p, "right", src)
	require.NoError(t, err)

	v := New(zap.NewNop())
	v.SetController(ctrl)
	sc := testScene()
	markers, err := v.LoadModel(sc)
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, "touchpoint", markers[0].Parent)
	return v, sc
}

func TestLoadModelWithoutProfile(t *testing.T) {
	v := New(zap.NewNop())
	_, err := v.LoadModel(testScene())
	assert.Error(t, err)
}

func TestTickIdle(t *testing.T) {
	v := New(zap.NewNop())
	assert.Nil(t, v.Tick(), "idle viewer must no-op")
}

func TestTickVisibility(t *testing.T) {
	v, sc := newTestViewer(t)
	touchPoint := sc.Find("touchpoint")

	require.NoError(t, v.SetInput("xr-standard-touchpad", Input{Pressed: boolPtr(true)}))
	v.Tick()
	assert.True(t, touchPoint.Visible)

	require.NoError(t, v.SetInput("xr-standard-touchpad", Input{Pressed: boolPtr(false), Touched: boolPtr(false)}))
	v.Tick()
	assert.False(t, touchPoint.Visible, "visibility overwrites prior state unconditionally")
}

func TestTickTransformEndpoints(t *testing.T) {
	v, sc := newTestViewer(t)
	target := sc.Find("trigger_value")

	require.NoError(t, v.SetInput("xr-standard-trigger", Input{Button: floatPtr(0)}))
	v.Tick()
	assert.Equal(t, minPose, target.Position)
	assert.Equal(t, minRot, target.Orientation)

	require.NoError(t, v.SetInput("xr-standard-trigger", Input{Button: floatPtr(1)}))
	v.Tick()
	assert.Equal(t, maxPose, target.Position)
	assert.Equal(t, maxRot, target.Orientation)
}

func TestTickTransformMonotonic(t *testing.T) {
	v, sc := newTestViewer(t)
	target := sc.Find("trigger_value")

	prev := -1.0
	for _, value := range []float64{0, 0.25, 0.5, 0.75, 1} {
		require.NoError(t, v.SetInput("xr-standard-trigger", Input{Button: floatPtr(value)}))
		v.Tick()
		angle := 2 * math.Atan2(target.Orientation.Z, target.Orientation.W)
		require.Greater(t, angle, prev, "value=%v", value)
		assert.InDelta(t, value*maxPose.Y, target.Position.Y, 1e-12)
		prev = angle
	}
}

func TestTickTransformExtrapolates(t *testing.T) {
	v, sc := newTestViewer(t)
	target := sc.Find("trigger_value")

	// The engine does not clamp; 2.0 lands past the max pose.
	require.NoError(t, v.SetInput("xr-standard-trigger", Input{Button: floatPtr(2)}))
	v.Tick()
	assert.InDelta(t, 2*maxPose.Y, target.Position.Y, 1e-12)
	angle := 2 * math.Atan2(target.Orientation.Z, target.Orientation.W)
	assert.InDelta(t, 2*math.Pi/3, angle, 1e-9)
}

func TestTickFrameContents(t *testing.T) {
	v, _ := newTestViewer(t)

	require.NoError(t, v.SetInput("xr-standard-trigger", Input{Button: floatPtr(0.5)}))
	frame := v.Tick()
	require.Len(t, frame, 2, "one transform target plus one visibility target")
	assert.Equal(t, "touchpoint", frame[0].Name)
	assert.Equal(t, "trigger_value", frame[1].Name)
}

func TestClearMakesTicksNoOps(t *testing.T) {
	v, _ := newTestViewer(t)
	require.NotNil(t, v.Tick())

	v.Clear()
	assert.Nil(t, v.Tick())
}

func TestSetControllerDropsModel(t *testing.T) {
	v, _ := newTestViewer(t)
	p := testProfile()
	gp, err := motion.NewGamepad(p, "right")
	require.NoError(t, err)
	src, err := motion.NewInputSource(gp, "right")
	require.NoError(t, err)
	ctrl, err := motion.NewController(p, "right", src)
	require.NoError(t, err)

	v.SetController(ctrl)
	assert.Nil(t, v.Tick(), "bindings from the old profile must not survive")
}

func TestSetInputErrors(t *testing.T) {
	v, _ := newTestViewer(t)
	assert.Error(t, v.SetInput("unknown", Input{Button: floatPtr(1)}))

	idle := New(zap.NewNop())
	assert.Error(t, idle.SetInput("xr-standard-trigger", Input{Button: floatPtr(1)}))
}

func TestDispose(t *testing.T) {
	v, _ := newTestViewer(t)
	v.Dispose()
	assert.Nil(t, v.Tick())
	assert.Error(t, v.SetInput("xr-standard-trigger", Input{Button: floatPtr(1)}))
}
