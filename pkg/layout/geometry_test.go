package layout

import (
	"math"
	"strings"
	"testing"
)

func TestBoxWidth(t *testing.T) {
	tests := []struct {
		name  string
		style LevelStyle
		text  string
		want  float64
	}{
		{
			name:  "short label floors at min width",
			style: SmallStyle,
			text:  "A",
			want:  60,
		},
		{
			name:  "long label saturates at line char limit",
			style: MidStyle,
			text:  strings.Repeat("x", 30),
			want:  10*12*0.60 + 16,
		},
		{
			name:  "growing label widens box",
			style: BigStyle,
			text:  "Measurement"[:10],
			want:  10*14*0.60 + 16,
		},
		{
			name:  "empty label floors at min width",
			style: BigStyle,
			text:  "",
			want:  90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.BoxWidth(tt.text); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("BoxWidth(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestBoxHeight(t *testing.T) {
	tests := []struct {
		name  string
		style LevelStyle
		text  string
		want  float64
	}{
		{name: "single line", style: MidStyle, text: "materials", want: 24},
		{name: "exactly at limit", style: MidStyle, text: strings.Repeat("x", 10), want: 24},
		{name: "wraps to two lines", style: MidStyle, text: strings.Repeat("x", 11), want: 24 * 1.8},
		{name: "small level base", style: SmallStyle, text: "A", want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.BoxHeight(tt.text); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("BoxHeight(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestWrapLabel(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "short stays on one line", text: "machines", want: []string{"machines"}},
		{name: "long splits at limit", text: "measurements", want: []string{"measuremen", "ts"}},
		{
			name: "overflow truncates with ellipsis",
			text: strings.Repeat("a", 25),
			want: []string{strings.Repeat("a", 10), strings.Repeat("a", 9) + "…"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapLabel(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("WrapLabel(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
