package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"zero", 0, 0},
		{"parcela de 5000", 5000.0 / 6, 833.33},
		{"metade arredonda para cima", 1.005000001, 1.01},
		{"negativo", -2.456, -2.46},
		{"já arredondado", 900, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundMoney(tt.value))
		})
	}
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()

	require.NoError(t, err)
	assert.Len(t, id, 6)
	for _, r := range id {
		assert.Contains(t, characters, string(r))
	}
}
