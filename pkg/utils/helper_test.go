package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0 ₫"},
		{500, "500 ₫"},
		{90000, "90.000 ₫"},
		{108000, "108.000 ₫"},
		{198000, "198.000 ₫"},
		{1234567, "1.234.567 ₫"},
		{-90000, "-90.000 ₫"},
		{90000.75, "90.000 ₫"}, // no minor unit
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.amount))
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45m", FormatDuration(45))
	assert.Equal(t, "2h", FormatDuration(120))
	assert.Equal(t, "2h 15m", FormatDuration(135))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 3, ParseInt("3", 1))
}
