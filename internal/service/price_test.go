package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"45", 45},
		{"45.50", 45.5},
		{"45 MAD", 45},
		{"MAD 45.5", 45.5},
		{"Le plat coûte 120 dirhams", 120},
		{"free", 0},
		{"", 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			assert.Equal(t, testCase.expected, ExtractPrice(testCase.input))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{80, "80.0 MAD"},
		{12.5, "12.5 MAD"},
		{0, "0.0 MAD"},
		{45.75, "45.75 MAD"},
	}

	for _, testCase := range tests {
		t.Run(testCase.expected, func(t *testing.T) {
			assert.Equal(t, testCase.expected, FormatPrice(testCase.input))
		})
	}
}

func TestGeneratePublicID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GeneratePublicID()

		assert.True(t, strings.HasPrefix(id, "rest_"))
		token := strings.TrimPrefix(id, "rest_")
		assert.LessOrEqual(t, len(token), 8)
		assert.NotEmpty(t, token)
		assert.NotContains(t, token, "_")
		assert.NotContains(t, token, "-")
		assert.NotContains(t, token, "=")

		seen[id] = true
	}
	assert.Greater(t, len(seen), 95, "identifiers should almost never collide")
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.3, Round2(0.1+0.2))
	assert.Equal(t, 92.55, Round2(92.554999))
	assert.Equal(t, -1.13, Round2(-1.125))
}
