package scene

import (
	"fmt"
	"math"

	"github.com/go-drift/press/cmd/pressdemo/internal/config"
	"github.com/go-drift/press/pkg/geometry"
	"github.com/go-drift/press/pkg/press"
)

// Build constructs a scene tree from config nodes. The returned root is
// a synthetic window node sized to enclose everything; it is never a
// press candidate or a hit-test target. Nodes marked excluded are
// registered with the detector's exclusion set, which is permanent for
// the life of the process.
func Build(nodes []config.NodeConfig) (*Node, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("scene has no nodes")
	}

	root := &Node{name: "window"}
	var maxRight, maxBottom float64
	for _, nc := range nodes {
		child, err := buildNode(nc)
		if err != nil {
			return nil, err
		}
		root.children = append(root.children, child)
		maxRight = math.Max(maxRight, child.frame.Right)
		maxBottom = math.Max(maxBottom, child.frame.Bottom)
	}
	root.frame = geometry.Rect{Right: maxRight + 1, Bottom: maxBottom + 1}

	return root, nil
}

func buildNode(nc config.NodeConfig) (*Node, error) {
	if nc.Name == "" {
		return nil, fmt.Errorf("scene node is missing a name")
	}
	frame := geometry.RectFromLTWH(
		float64(nc.Rect.X), float64(nc.Rect.Y),
		float64(nc.Rect.W), float64(nc.Rect.H),
	)
	if frame.IsEmpty() {
		return nil, fmt.Errorf("scene node %s has an empty frame", nc.Name)
	}

	n := &Node{
		name:       nc.Name,
		frame:      frame,
		deferPress: nc.DeferPress,
		invisible:  nc.Invisible,
	}
	if nc.Excluded {
		press.Exclude(n)
	}

	for _, cc := range nc.Children {
		child, err := buildNode(cc)
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, child)
	}
	return n, nil
}
