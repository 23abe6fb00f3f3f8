package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDegradation(t *testing.T) {
	minimum := Size{Width: 40, Height: 14}

	tests := []struct {
		name      string
		cell      Size
		container Size
		want      Degradation
	}{
		{
			name:      "roomy cells",
			cell:      Size{Width: 8, Height: 3},
			container: Size{Width: 80, Height: 24},
			want:      Degradation{},
		},
		{
			name:      "flat cells lose borders",
			cell:      Size{Width: 8, Height: 2},
			container: Size{Width: 80, Height: 14},
			want:      Degradation{BorderlessCells: true},
		},
		{
			name:      "narrow cells compact labels",
			cell:      Size{Width: 3, Height: 3},
			container: Size{Width: 40, Height: 20},
			want:      Degradation{CompactLabels: true},
		},
		{
			name:      "below minimum",
			cell:      Size{Width: 0, Height: 1},
			container: Size{Width: 10, Height: 5},
			want: Degradation{
				BorderlessCells: true,
				CompactLabels:   true,
				HideCells:       true,
				ShowMinWarning:  true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDegradation(tt.cell, tt.container, minimum)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShouldDrawBorders(t *testing.T) {
	assert.True(t, Degradation{}.ShouldDrawBorders())
	assert.False(t, Degradation{BorderlessCells: true}.ShouldDrawBorders())
	assert.False(t, Degradation{HideCells: true}.ShouldDrawBorders())
}
