// Package scene is a retained-mode scene graph. The simulation creates and
// moves nodes through game.Scene; frontends walk them each frame to draw.
package scene

import "streetsprint/internal/game"

// Node is one drawable. Frontends read the fields directly.
type Node struct {
	Kind    game.VisualKind
	Serial  uint64 // stable per node, handy for colour variation
	X, Y, Z float64
	Rot     [3]float64
	Scale   [3]float64
	Opacity float64
	Visible bool
	Label   string

	owner   *Graph
	removed bool
}

func (n *Node) SetPosition(x, y, z float64) { n.X, n.Y, n.Z = x, y, z }
func (n *Node) SetRotation(x, y, z float64) { n.Rot = [3]float64{x, y, z} }
func (n *Node) SetVisible(v bool)           { n.Visible = v }
func (n *Node) SetOpacity(a float64)        { n.Opacity = a }
func (n *Node) SetScale(x, y, z float64)    { n.Scale = [3]float64{x, y, z} }
func (n *Node) SetLabel(text string)        { n.Label = text }

// Graph owns every live node in insertion order. Not safe for concurrent use.
type Graph struct {
	nodes   []*Node
	removed int
	serial  uint64
}

func New() *Graph {
	return &Graph{}
}

// Add implements game.Scene.
func (g *Graph) Add(kind game.VisualKind) game.Visual {
	g.serial++
	n := &Node{
		Kind:    kind,
		Serial:  g.serial,
		owner:   g,
		Scale:   [3]float64{1, 1, 1},
		Opacity: 1,
		Visible: true,
	}
	g.nodes = append(g.nodes, n)
	return n
}

// Remove implements game.Scene. Unknown or already removed handles are ignored.
func (g *Graph) Remove(v game.Visual) {
	n, ok := v.(*Node)
	if !ok || n == nil || n.owner != g || n.removed {
		return
	}
	n.removed = true
	g.removed++
	if g.removed > 32 && g.removed*2 > len(g.nodes) {
		g.compact()
	}
}

func (g *Graph) compact() {
	live := g.nodes[:0]
	for _, n := range g.nodes {
		if !n.removed {
			live = append(live, n)
		}
	}
	clear(g.nodes[len(live):])
	g.nodes = live
	g.removed = 0
}

// Each calls fn for every visible node in insertion order.
func (g *Graph) Each(fn func(*Node)) {
	for _, n := range g.nodes {
		if n.removed || !n.Visible {
			continue
		}
		fn(n)
	}
}

// Len is the number of live nodes, visible or not.
func (g *Graph) Len() int {
	return len(g.nodes) - g.removed
}

// Count returns the live nodes of one kind.
func (g *Graph) Count(kind game.VisualKind) int {
	c := 0
	for _, n := range g.nodes {
		if !n.removed && n.Kind == kind {
			c++
		}
	}
	return c
}
