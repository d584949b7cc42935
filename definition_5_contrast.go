package gantt

import "github.com/lucasb-eyer/go-colorful"

var (
	LabelWhite = colorful.Color{R: 1, G: 1, B: 1}
	LabelBlack = colorful.Color{}
)

// LabelColor picks white text on fills whose HSV value is below one half
// and black otherwise, a value of exactly 0.5 gets black.
func LabelColor(fill colorful.Color) colorful.Color {
	_, _, value := fill.Hsv()

	return ternary(value < 0.5, LabelWhite, LabelBlack)
}
