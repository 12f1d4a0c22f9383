package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestScene() *Scene {
	//  root
	//    trigger
	//      value
	//    touchpad
	//      value        (same name as the one under trigger)
	//      touchpoint
	return New(&Node{
		Name: "root",
		Children: []*Node{
			{
				Name:     "trigger",
				Children: []*Node{{Name: "value"}},
			},
			{
				Name: "touchpad",
				Children: []*Node{
					{Name: "value"},
					{Name: "touchpoint"},
				},
			},
		},
	})
}

func TestFind(t *testing.T) {
	s := buildTestScene()

	require.NotNil(t, s.Find("root"))
	require.NotNil(t, s.Find("touchpoint"))
	assert.Nil(t, s.Find("missing"))

	// Duplicate names resolve to the first node in depth-first order.
	v := s.Find("value")
	require.NotNil(t, v)
	assert.Equal(t, "trigger", v.Parent().Name)
}

func TestFindUnderScopesToSubtree(t *testing.T) {
	s := buildTestScene()

	touchpad := s.Find("touchpad")
	require.NotNil(t, touchpad)

	v := s.FindUnder(touchpad, "value")
	require.NotNil(t, v)
	assert.Equal(t, "touchpad", v.Parent().Name)

	// The name exists elsewhere in the scene but not in this subtree.
	assert.Nil(t, s.FindUnder(touchpad, "trigger"))

	// The scope root itself is a candidate.
	assert.Equal(t, touchpad, s.FindUnder(touchpad, "touchpad"))
}

func TestAddNodeIsIndexed(t *testing.T) {
	s := buildTestScene()
	touchpoint := s.Find("touchpoint")
	require.NotNil(t, touchpoint)

	assert.Nil(t, s.Find("touch-dot"))
	s.AddNode(touchpoint, &Node{Name: "touch-dot", Marker: true})

	dot := s.Find("touch-dot")
	require.NotNil(t, dot)
	assert.Equal(t, touchpoint, dot.Parent())
	assert.Len(t, touchpoint.Children, 1)

	// Scoped lookups see the new node too.
	assert.NotNil(t, s.FindUnder(s.Find("touchpad"), "touch-dot"))
	assert.Nil(t, s.FindUnder(s.Find("trigger"), "touch-dot"))
}

func TestDecode(t *testing.T) {
	s, err := Decode([]byte(`{
		"name": "root",
		"visible": true,
		"position": {"x": 1, "y": 2, "z": 3},
		"orientation": {"x": 0, "y": 0, "z": 0, "w": 1},
		"children": [{"name": "child", "visible": true}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, Vec3{X: 1, Y: 2, Z: 3}, s.Root.Position)
	require.NotNil(t, s.Find("child"))
	assert.Equal(t, s.Root, s.Find("child").Parent())

	_, err = Decode([]byte(`{"visible": true}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}
