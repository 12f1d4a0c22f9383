// Package viewer owns the per-frame update state: the loaded scene, the
// active controller and the binding table computed for the pair. One Viewer
// exists per process; all operations go through it rather than through
// package-level state.
package viewer

import (
	"errors"
	"sort"
	"sync"

	"github.com/Artyom17/webxr-input-profiles/internal/binding"
	"github.com/Artyom17/webxr-input-profiles/internal/motion"
	"github.com/Artyom17/webxr-input-profiles/internal/scene"
	"go.uber.org/zap"
)

// Frame is the snapshot of every node the update loop mutated on one tick.
type Frame []scene.State

// MarkerPlacement tells the renderer where a touch marker was added.
type MarkerPlacement struct {
	Parent string      `json:"parent"`
	Node   scene.State `json:"node"`
}

// Input is one manual-control update for a component, routed onto the
// synthetic gamepad through the component's gamepad indices. Nil fields are
// left untouched.
type Input struct {
	Button  *float64 `json:"button,omitempty"`
	Touched *bool    `json:"touched,omitempty"`
	Pressed *bool    `json:"pressed,omitempty"`
	XAxis   *float64 `json:"xAxis,omitempty"`
	YAxis   *float64 `json:"yAxis,omitempty"`
}

// Viewer drives visual state from component values. It is idle until both
// a controller and a model are attached; ticks while idle do nothing.
type Viewer struct {
	log *zap.Logger

	mu         sync.Mutex
	scene      *scene.Scene
	controller *motion.Controller
	bindings   binding.Table
}

// New creates an idle viewer.
func New(log *zap.Logger) *Viewer {
	return &Viewer{log: log}
}

// SetController makes controller the active component-value provider and
// drops any loaded model: bindings are only valid for the profile they were
// resolved against, so the renderer must re-send the model hierarchy.
func (v *Viewer) SetController(controller *motion.Controller) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.controller = controller
	v.scene = nil
	v.bindings = nil
}

// LoadModel binds the active profile onto a freshly loaded scene. Node
// resolution and touch-marker attachment run exactly once per load. The
// returned placements tell the renderer which marker nodes were added.
func (v *Viewer) LoadModel(sc *scene.Scene) ([]MarkerPlacement, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.controller == nil {
		return nil, errors.New("viewer: no profile selected")
	}

	v.bindings = binding.Resolve(sc, v.controller.Components, v.log)
	binding.AttachTouchMarkers(sc, v.controller.Components, v.log)
	v.scene = sc

	placements := collectMarkers(sc.Root, nil)
	v.log.Info("model bound",
		zap.String("profile", v.controller.ProfileID),
		zap.Int("components", len(v.bindings)),
		zap.Int("markers", len(placements)))
	return placements, nil
}

// Clear drops the loaded model. Subsequent ticks no-op until the next load.
func (v *Viewer) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scene = nil
	v.bindings = nil
}

// Dispose resets the viewer to its initial state.
func (v *Viewer) Dispose() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.scene = nil
	v.controller = nil
	v.bindings = nil
}

// SetInput routes a manual-control update onto the synthetic gamepad.
func (v *Viewer) SetInput(componentID string, in Input) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.controller == nil {
		return errors.New("viewer: no profile selected")
	}
	comp, ok := v.controller.Components[componentID]
	if !ok {
		return errors.New("viewer: unknown component " + componentID)
	}

	gp := v.controller.Source().Gamepad
	if in.Button != nil || in.Touched != nil || in.Pressed != nil {
		if idx := comp.GamepadIndices.Button; idx != nil {
			cur := gp.Buttons[*idx]
			value := cur.Value
			if in.Button != nil {
				value = *in.Button
			}
			touched := value > 0
			if in.Touched != nil {
				touched = *in.Touched
			}
			pressed := value >= 1
			if in.Pressed != nil {
				pressed = *in.Pressed
			}
			if err := gp.SetButton(*idx, value, touched, pressed); err != nil {
				return err
			}
		}
	}
	if in.XAxis != nil {
		if idx := comp.GamepadIndices.XAxis; idx != nil {
			if err := gp.SetAxis(*idx, *in.XAxis); err != nil {
				return err
			}
		}
	}
	if in.YAxis != nil {
		if idx := comp.GamepadIndices.YAxis; idx != nil {
			if err := gp.SetAxis(*idx, *in.YAxis); err != nil {
				return err
			}
		}
	}
	return nil
}

// Tick runs one frame: refresh component values, apply every resolved
// binding, and return the snapshot of the nodes that were written. Returns
// nil while idle. Responses whose binding never resolved are skipped
// silently; they were diagnosed at load time.
func (v *Viewer) Tick() Frame {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.scene == nil || v.controller == nil {
		return nil
	}

	v.controller.Refresh()

	touched := make(map[*scene.Node]struct{})
	for id, comp := range v.controller.Components {
		responses := v.bindings[id]
		if responses == nil {
			continue
		}
		for responseRoot, resp := range comp.Responses {
			b, ok := responses[responseRoot]
			if !ok {
				continue
			}
			b.Apply(resp)
			touched[b.Target()] = struct{}{}
		}
	}

	frame := make(Frame, 0, len(touched))
	for n := range touched {
		frame = append(frame, n.Snapshot())
	}
	sort.Slice(frame, func(i, j int) bool { return frame[i].Name < frame[j].Name })
	return frame
}

func collectMarkers(n *scene.Node, out []MarkerPlacement) []MarkerPlacement {
	for _, c := range n.Children {
		if c.Marker {
			out = append(out, MarkerPlacement{Parent: n.Name, Node: c.Snapshot()})
		}
		out = collectMarkers(c, out)
	}
	return out
}
