package garden

import "fmt"

// Property names an animatable Node field.
type Property uint8

const (
	PropertyX Property = iota
	PropertyY
	PropertyRotation
	PropertyScaleX
	PropertyScaleY
	PropertyAlpha
	PropertySpeed
	PropertyWidth
	PropertyHeight
	PropertyColorBlend
)

var propertyNames = [...]string{
	PropertyX:          "x",
	PropertyY:          "y",
	PropertyRotation:   "rotation",
	PropertyScaleX:     "scaleX",
	PropertyScaleY:     "scaleY",
	PropertyAlpha:      "alpha",
	PropertySpeed:      "speed",
	PropertyWidth:      "width",
	PropertyHeight:     "height",
	PropertyColorBlend: "colorBlend",
}

func (p Property) String() string {
	if int(p) < len(propertyNames) {
		return propertyNames[p]
	}
	return fmt.Sprintf("Property(%d)", uint8(p))
}

func (n *Node) field(p Property) *float64 {
	switch p {
	case PropertyX:
		return &n.X
	case PropertyY:
		return &n.Y
	case PropertyRotation:
		return &n.Rotation
	case PropertyScaleX:
		return &n.ScaleX
	case PropertyScaleY:
		return &n.ScaleY
	case PropertyAlpha:
		return &n.Alpha
	case PropertySpeed:
		return &n.Speed
	case PropertyWidth:
		return &n.Width
	case PropertyHeight:
		return &n.Height
	case PropertyColorBlend:
		return &n.ColorBlend
	}
	panic("garden: unknown node property " + p.String())
}

// NodeAccessor returns an Accessor over one of node's properties that marks
// the node dirty on every write.
func NodeAccessor(node *Node, p Property) Accessor {
	f := node.field(p)
	return Accessor{
		Get: func() float64 { return *f },
		Set: func(v float64) {
			*f = v
			node.transformDirty = true
		},
	}
}

// AnimateNode animates one property of node. The action stops if node is
// disposed and advances at node's effective speed.
func AnimateNode(node *Node, p Property, tr Transformation, settings AnimationSettings) *Action {
	a := Animate(NodeAccessor(node, p), tr, settings)
	a.target = node
	a.speedTarget = p == PropertySpeed
	return a
}

// --- Move ---

// MoveBy moves node by (dx, dy). Composes with other MoveBy actions.
func MoveBy(node *Node, dx, dy float64, settings AnimationSettings) *ActionGroup {
	return Group(
		AnimateNode(node, PropertyX, Add(dx), settings),
		AnimateNode(node, PropertyY, Add(dy), settings),
	)
}

// MoveTo moves node to (x, y).
func MoveTo(node *Node, x, y float64, settings AnimationSettings) *ActionGroup {
	return Group(
		AnimateNode(node, PropertyX, ChangeTo(x), settings),
		AnimateNode(node, PropertyY, ChangeTo(y), settings),
	)
}

// MoveToX moves node horizontally to x.
func MoveToX(node *Node, x float64, settings AnimationSettings) *Action {
	return AnimateNode(node, PropertyX, ChangeTo(x), settings)
}

// MoveToY moves node vertically to y.
func MoveToY(node *Node, y float64, settings AnimationSettings) *Action {
	return AnimateNode(node, PropertyY, ChangeTo(y), settings)
}

// --- Rotate ---

// RotateBy rotates node by radians.
func RotateBy(node *Node, radians float64, settings AnimationSettings) *Action {
	return AnimateNode(node, PropertyRotation, Add(radians), settings)
}

// RotateTo rotates node to radians.
func RotateTo(node *Node, radians float64, settings AnimationSettings) *Action {
	return AnimateNode(node, PropertyRotation, ChangeTo(radians), settings)
}

// --- Speed ---

// SpeedBy multiplies node's speed by factor.
func SpeedBy(node *Node, factor float64, settings AnimationSettings) *Action {
	return AnimateNode(node, PropertySpeed, MultiplyBy(factor), settings)
}

// SpeedTo changes node's speed to speed.
func SpeedTo(node *Node, speed float64, settings AnimationSettings) *Action {
	return AnimateNode(node, PropertySpeed, ChangeTo(speed), settings)
}

// --- Scale ---

// ScaleBy multiplies both scale axes by factor.
func ScaleBy(node *Node, factor float64, settings AnimationSettings) *ActionGroup {
	return ScaleXYBy(node, factor, factor, settings)
}

// ScaleTo changes both scale axes to scale.
func ScaleTo(node *Node, scale float64, settings AnimationSettings) *ActionGroup {
	return ScaleXYTo(node, scale, scale, settings)
}

// ScaleXYBy multiplies the scale axes by sx and sy.
func ScaleXYBy(node *Node, sx, sy float64, settings AnimationSettings) *ActionGroup {
	return Group(
		AnimateNode(node, PropertyScaleX, MultiplyBy(sx), settings),
		AnimateNode(node, PropertyScaleY, MultiplyBy(sy), settings),
	)
}

// ScaleXYTo changes the scale axes to sx and sy.
func ScaleXYTo(node *Node, sx, sy float64, settings AnimationSettings) *ActionGroup {
	return Group(
		ScaleToX(node, sx, settings),
		ScaleToY(node, sy, settings),
	)
}

// ScaleToX changes the horizontal scale to sx.
func ScaleToX(node *Node, sx float64, settings AnimationSettings) *Action {
	return AnimateNode(node, PropertyScaleX, ChangeTo(sx), settings)
}

// ScaleToY changes the vertical scale to sy.
func ScaleToY(node *Node, sy float64, settings AnimationSettings) *Action {
	return AnimateNode(node, PropertyScaleY, ChangeTo(sy), settings)
}

// --- Fade ---

// FadeIn changes node's alpha to 1.
func FadeIn(node *Node, settings AnimationSettings) *Action {
	return AnimateNode(node, PropertyAlpha, ChangeTo(1), settings)
}

// FadeOut changes node's alpha to 0.
func FadeOut(node *Node, settings AnimationSettings) *Action {
	return AnimateNode(node, PropertyAlpha, ChangeTo(0), settings)
}

// FadeAlphaBy multiplies node's alpha by factor.
func FadeAlphaBy(node *Node, factor float64, settings AnimationSettings) *Action {
	return AnimateNode(node, PropertyAlpha, MultiplyBy(factor), settings)
}

// FadeAlphaTo changes node's alpha to alpha.
func FadeAlphaTo(node *Node, alpha float64, settings AnimationSettings) *Action {
	return AnimateNode(node, PropertyAlpha, ChangeTo(alpha), settings)
}

// --- Resize ---

// ResizeBy grows node's size by (dw, dh).
func ResizeBy(node *Node, dw, dh float64, settings AnimationSettings) *ActionGroup {
	return Group(
		AnimateNode(node, PropertyWidth, Add(dw), settings),
		AnimateNode(node, PropertyHeight, Add(dh), settings),
	)
}

// ResizeTo changes node's size to (w, h).
func ResizeTo(node *Node, w, h float64, settings AnimationSettings) *ActionGroup {
	return Group(
		ResizeToWidth(node, w, settings),
		ResizeToHeight(node, h, settings),
	)
}

// ResizeToWidth changes node's width to w.
func ResizeToWidth(node *Node, w float64, settings AnimationSettings) *Action {
	return AnimateNode(node, PropertyWidth, ChangeTo(w), settings)
}

// ResizeToHeight changes node's height to h.
func ResizeToHeight(node *Node, h float64, settings AnimationSettings) *Action {
	return AnimateNode(node, PropertyHeight, ChangeTo(h), settings)
}

// --- Colorize ---

// Colorize changes how strongly node.Color tints its image.
func Colorize(node *Node, blend float64, settings AnimationSettings) *Action {
	return AnimateNode(node, PropertyColorBlend, ChangeTo(blend), settings)
}
