package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		finish   string
		material string
		want     int64
	}{
		{"base options", FinishSmooth, MaterialSilicone, 1400},
		{"textured finish", FinishTextured, MaterialSilicone, 1700},
		{"polycarbonate material", FinishSmooth, MaterialPolycarbonate, 1900},
		{"both surcharges", FinishTextured, MaterialPolycarbonate, 2200},
		{"unknown options quote at base", "matte", "titanium", 1400},
		{"empty options quote at base", "", "", 1400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.finish, tt.material))
		})
	}
}

func TestQuoteIsDeterministic(t *testing.T) {
	first := Quote(FinishTextured, MaterialPolycarbonate)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Quote(FinishTextured, MaterialPolycarbonate))
	}
}
