package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArea(t *testing.T) {
	tests := []struct {
		ref      string
		expected Area
	}{
		{"A1:D10", Area{R1: 1, C1: 1, R2: 10, C2: 4}},
		{"$B$2:$C$3", Area{R1: 2, C1: 2, R2: 3, C2: 3}},
		{"C5", Area{R1: 5, C1: 3, R2: 5, C2: 3}},
		{"D10:A1", Area{R1: 1, C1: 1, R2: 10, C2: 4}},
	}

	for _, tt := range tests {
		area, err := ParseArea(tt.ref)
		require.NoError(t, err, "ParseArea(%q)", tt.ref)
		assert.Equal(t, tt.expected, area, "ParseArea(%q)", tt.ref)
	}
}

func TestParseAreaInvalid(t *testing.T) {
	for _, ref := range []string{"", "A1:B2:C3", "1A:B2", "A1:??"} {
		_, err := ParseArea(ref)
		assert.Error(t, err, "ParseArea(%q)", ref)
	}
}

func TestAreaWidth(t *testing.T) {
	assert.Equal(t, 4, Area{R1: 2, C1: 2, R2: 3, C2: 4}.Width())
}
