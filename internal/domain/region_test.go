package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionClamp(t *testing.T) {
	tests := []struct {
		name    string
		region  *Region
		wantOK  bool
		wantBox [4]int
	}{
		{
			name:    "inside bounds untouched",
			region:  NewRegion("chair", 0.9, 10, 20, 100, 120),
			wantOK:  true,
			wantBox: [4]int{10, 20, 100, 120},
		},
		{
			name:    "negative origin clamped",
			region:  NewRegion("sofa", 0.5, -5, -3, 50, 60),
			wantOK:  true,
			wantBox: [4]int{0, 0, 50, 60},
		},
		{
			name:    "overflow clamped to image bounds",
			region:  NewRegion("table", 0.7, 100, 100, 900, 900),
			wantOK:  true,
			wantBox: [4]int{100, 100, 639, 479},
		},
		{
			name:   "degenerate after clamping",
			region: NewRegion("bed", 0.4, 700, 500, 800, 600),
			wantOK: false,
		},
		{
			name:   "zero area rejected",
			region: NewRegion("desk", 0.6, 30, 30, 30, 30),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok := tt.region.Clamp(640, 480)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantBox, [4]int{tt.region.X1, tt.region.Y1, tt.region.X2, tt.region.Y2})
			}
		})
	}
}

func TestFullRegion(t *testing.T) {
	r := FullRegion(640, 480)

	assert.Equal(t, FullRegionLabel, r.Label)
	assert.Equal(t, float32(1.0), r.Confidence)
	assert.Equal(t, 0, r.X1)
	assert.Equal(t, 0, r.Y1)
	assert.Equal(t, 640, r.X2)
	assert.Equal(t, 480, r.Y2)
}
