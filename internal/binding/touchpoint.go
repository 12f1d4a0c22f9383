package binding

import (
	"github.com/Artyom17/webxr-input-profiles/internal/motion"
	"github.com/Artyom17/webxr-input-profiles/internal/profile"
	"github.com/Artyom17/webxr-input-profiles/internal/scene"
	"go.uber.org/zap"
)

// TouchDotName names the marker node added under each touch point. The
// renderer draws marker nodes as a small sphere.
const TouchDotName = "touch-dot"

// AttachTouchMarkers adds a visible marker node at every touch-surface
// component's touch point. Call once per model load; a second call adds a
// second marker.
func AttachTouchMarkers(sc *scene.Scene, components map[string]*motion.Component, log *zap.Logger) {
	for id, comp := range components {
		if comp.Type != profile.TypeTouchpad {
			continue
		}

		root := sc.Find(comp.RootNodeName)
		if root == nil {
			log.Warn("touchpad root node not found, skipping touch marker",
				zap.String("component", id),
				zap.String("node", comp.RootNodeName))
			continue
		}

		touchPoint := sc.FindUnder(root, comp.TouchPointNodeName)
		if touchPoint == nil {
			log.Warn("touch point node not found, skipping touch marker",
				zap.String("component", id),
				zap.String("node", comp.TouchPointNodeName))
			continue
		}

		sc.AddNode(touchPoint, &scene.Node{
			Name:        TouchDotName,
			Visible:     true,
			Orientation: scene.Identity,
			Marker:      true,
		})
	}
}
