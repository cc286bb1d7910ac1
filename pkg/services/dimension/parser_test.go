package dimension

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{name: "empty string", input: "", expected: 0},
		{name: "whitespace only", input: "   ", expected: 0},
		{name: "feet and inches", input: `14'3"`, expected: 14.25},
		{name: "feet only with mark", input: "12'", expected: 12},
		{name: "inches only", input: `'6"`, expected: 0.5},
		{name: "plain decimal", input: "14.25", expected: 14.25},
		{name: "plain integer", input: "999", expected: 999},
		{name: "spaces around parts", input: ` 12' 6" `, expected: 12.5},
		{name: "non-numeric feet", input: `abc'3"`, wantErr: true},
		{name: "non-numeric inches", input: `12'x"`, wantErr: true},
		{name: "non-numeric plain", input: "wide", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				var fe *FormatError
				assert.ErrorAs(t, err, &fe)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestParseFeetInchesRoundTrip(t *testing.T) {
	for feet := 0; feet <= 20; feet++ {
		for inches := 0; inches < 12; inches++ {
			input := fmt.Sprintf(`%d'%d"`, feet, inches)
			got, err := Parse(input)
			require.NoError(t, err, input)
			assert.InDelta(t, float64(feet)+float64(inches)/12, got, 1e-9, input)
		}
	}
}
