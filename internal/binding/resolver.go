package binding

import (
	"github.com/Artyom17/webxr-input-profiles/internal/motion"
	"github.com/Artyom17/webxr-input-profiles/internal/profile"
	"github.com/Artyom17/webxr-input-profiles/internal/scene"
	"go.uber.org/zap"
)

// Resolve walks the loaded scene once and binds every visual response whose
// nodes are all present. Missing nodes degrade gracefully: a missing
// component root skips the whole component, any other missing node skips
// just that response. Each gap is logged here, once per model load, never
// again per frame.
func Resolve(sc *scene.Scene, components map[string]*motion.Component, log *zap.Logger) Table {
	table := make(Table, len(components))

	for id, comp := range components {
		componentRoot := sc.Find(comp.RootNodeName)
		if componentRoot == nil {
			log.Warn("component root node not found, skipping component",
				zap.String("component", id),
				zap.String("node", comp.RootNodeName))
			continue
		}

		for responseRoot, resp := range comp.Responses {
			b := resolveResponse(sc, comp, componentRoot, resp.Desc, log)
			if b == nil {
				continue
			}
			if table[id] == nil {
				table[id] = make(map[string]Binding)
			}
			table[id][responseRoot] = b
		}
	}

	return table
}

func resolveResponse(sc *scene.Scene, comp *motion.Component, componentRoot *scene.Node, desc *profile.VisualResponse, log *zap.Logger) Binding {
	root := componentRoot
	if desc.RootNodeName != comp.RootNodeName {
		if root = sc.FindUnder(componentRoot, desc.RootNodeName); root == nil {
			log.Warn("response root node not found, skipping response",
				zap.String("component", comp.ID),
				zap.String("node", desc.RootNodeName))
			return nil
		}
	}

	target := sc.FindUnder(root, desc.TargetNodeName)
	if target == nil {
		log.Warn("response target node not found, skipping response",
			zap.String("component", comp.ID),
			zap.String("node", desc.TargetNodeName))
		return nil
	}

	switch desc.Property {
	case profile.PropertyVisibility:
		return &Visibility{Root: root, TargetNode: target}

	case profile.PropertyTransform:
		minNode := sc.FindUnder(root, desc.MinNodeName)
		maxNode := sc.FindUnder(root, desc.MaxNodeName)
		if minNode == nil || maxNode == nil {
			// A transform response without both extremes is dropped
			// whole; a target-only partial binding is never produced.
			log.Warn("transform extremes not found, skipping response",
				zap.String("component", comp.ID),
				zap.String("minNode", desc.MinNodeName),
				zap.String("maxNode", desc.MaxNodeName))
			return nil
		}
		return &Transform{Root: root, TargetNode: target, MinNode: minNode, MaxNode: maxNode}

	default:
		// Unknown property kinds are ignored, not errors.
		return nil
	}
}
