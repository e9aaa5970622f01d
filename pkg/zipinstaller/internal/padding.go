package internal

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Inset shrinks a w x h box by p and returns the inner origin and size.
// Sizes never go negative.
func (p Padding) Inset(x, y, w, h int32) (int32, int32, int32, int32) {
	w -= p.Left + p.Right
	h -= p.Top + p.Bottom
	return x + p.Left, y + p.Top, max(w, 0), max(h, 0)
}
