package garden

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Draw renders the scene tree onto screen. Children draw after their parent,
// ordered by ZIndex and then insertion order. Invisible nodes hide their
// whole subtree.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	drawNode(screen, s.root)
}

func drawNode(screen *ebiten.Image, n *Node) {
	if !n.Visible {
		return
	}
	drawSelf(screen, n)
	for _, child := range n.sortedChildList() {
		drawNode(screen, child)
	}
}

// drawSelf draws n's image, or a tinted WhitePixel when n only has a size.
func drawSelf(screen *ebiten.Image, n *Node) {
	img := n.Image
	w, h := n.Width, n.Height
	if img == nil {
		if w <= 0 || h <= 0 {
			return
		}
		img = WhitePixel
	}
	if n.worldAlpha <= 0 {
		return
	}

	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if w <= 0 {
		w = iw
	}
	if h <= 0 {
		h = ih
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w/iw, h/ih)
	wt := n.worldTransform
	var world ebiten.GeoM
	world.SetElement(0, 0, wt[0])
	world.SetElement(1, 0, wt[1])
	world.SetElement(0, 1, wt[2])
	world.SetElement(1, 1, wt[3])
	world.SetElement(0, 2, wt[4])
	world.SetElement(1, 2, wt[5])
	op.GeoM.Concat(world)

	tint := n.Color
	if n.Image != nil {
		tint = lerpColor(ColorWhite, n.Color, clamp01(n.ColorBlend))
	}
	a := tint.A * n.worldAlpha
	op.ColorScale.Scale(float32(tint.R*a), float32(tint.G*a), float32(tint.B*a), float32(a))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, &op)
}

// sortedChildList returns children ordered by ZIndex, rebuilding the cached
// order only when it may have changed. Stable insertion sort: zero
// allocations and O(n) when children are already nearly sorted.
func (n *Node) sortedChildList() []*Node {
	nc := len(n.children)
	if n.childrenSorted && len(n.sortedChildren) == nc {
		return n.sortedChildren
	}
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
	return n.sortedChildren
}
