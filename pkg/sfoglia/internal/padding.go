package internal

// Padding defines spacing on all four sides of an element.
// It doubles as the margin type for list item views.
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

// Horizontal returns the combined left and right spacing.
func (p Padding) Horizontal() int32 {
	return p.Left + p.Right
}

// Vertical returns the combined top and bottom spacing.
func (p Padding) Vertical() int32 {
	return p.Top + p.Bottom
}
