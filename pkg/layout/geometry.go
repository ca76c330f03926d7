package layout

import (
	"math"
	"unicode/utf8"
)

// Text sizing. Label boxes grow with content but saturate: characters past
// LineCharLimit wrap onto a second line instead of widening the box.
const (
	// LineCharLimit is the number of characters that count toward box
	// width before the label wraps onto a second line.
	LineCharLimit = 10

	charWidthFactor = 0.60
	boxPadding      = 16.0
	twoLineFactor   = 1.8
)

// Spacing between elements, in canvas units.
const (
	// SmallGap separates consecutive small-bone boxes in a stack.
	SmallGap = 8.0
	// SmallLink is the horizontal run from a mid-bone label box to its
	// small-bone connectors.
	SmallLink = 24.0

	midReachBase   = 40.0
	midClearance   = 20.0
	midBoxMargin   = 8.0
	smallBoxMargin = 8.0
)

// Diagonal and slot sizing.
const (
	// DefaultDiagonal is the diagonal length of a big bone with no mid
	// bones, and the floor for all others.
	DefaultDiagonal = 120.0

	diagonalTailMargin = 24.0
	headMarginFactor   = 1.5
	extentMargin       = 16.0
	slotMargin         = 24.0

	// MinSlotWidth is the smallest horizontal footprint reserved for a
	// big bone along the spine.
	MinSlotWidth = 140.0
	// PairGap widens a group's slot when both a top and a bottom member
	// share it.
	PairGap = 40.0
	// GroupGap separates consecutive pair groups along the spine.
	GroupGap = 48.0

	diagonalClearance = 32.0
)

// Canvas and ornaments.
const (
	// TailClearance keeps diagram content off the tail ornament.
	TailClearance = 24.0
	// EmptySpineLength is the spine length of a diagram with no big bones.
	EmptySpineLength = 320.0

	canvasPad  = 32.0
	headOffset = 16.0

	// DefaultMinWidth and DefaultMinHeight floor the canvas at a useful
	// viewing size.
	DefaultMinWidth  = 800.0
	DefaultMinHeight = 600.0

	baseFishScale = 1.0
	fishScaleStep = 0.05
	maxFishScale  = 2.0

	headGlyphBaseWidth  = 96.0
	headGlyphBaseHeight = 120.0
	tailGlyphBaseWidth  = 64.0
	tailGlyphBaseHeight = 96.0
)

// LevelStyle fixes the text metrics for one bone level. The three levels
// shrink slightly from big to small so depth reads at a glance.
type LevelStyle struct {
	FontSize   float64
	MinWidth   float64
	BaseHeight float64
}

var (
	// BigStyle sizes big-bone category labels.
	BigStyle = LevelStyle{FontSize: 14, MinWidth: 90, BaseHeight: 28}
	// MidStyle sizes mid-bone sub-cause labels.
	MidStyle = LevelStyle{FontSize: 12, MinWidth: 70, BaseHeight: 24}
	// SmallStyle sizes leaf cause labels.
	SmallStyle = LevelStyle{FontSize: 11, MinWidth: 60, BaseHeight: 20}
)

// BoxWidth returns the label box width for text at this level. Width grows
// with the character count up to LineCharLimit and never below MinWidth.
func (s LevelStyle) BoxWidth(text string) float64 {
	n := utf8.RuneCountInString(text)
	if n > LineCharLimit {
		n = LineCharLimit
	}
	w := float64(n)*s.FontSize*charWidthFactor + boxPadding
	return math.Max(s.MinWidth, w)
}

// BoxHeight returns the label box height for text at this level. Text
// past LineCharLimit wraps, so the box holds two lines.
func (s LevelStyle) BoxHeight(text string) float64 {
	if utf8.RuneCountInString(text) > LineCharLimit {
		return s.BaseHeight * twoLineFactor
	}
	return s.BaseHeight
}

// WrapLabel splits text into at most two lines of LineCharLimit runes for
// drawing inside a box sized by BoxWidth/BoxHeight. Text beyond two lines
// is truncated with an ellipsis; label length limits at the input boundary
// normally keep this from triggering.
func WrapLabel(text string) []string {
	runes := []rune(text)
	if len(runes) <= LineCharLimit {
		return []string{text}
	}
	first := string(runes[:LineCharLimit])
	rest := runes[LineCharLimit:]
	if len(rest) > LineCharLimit {
		rest = append(rest[:LineCharLimit-1], '…')
	}
	return []string{first, string(rest)}
}
