package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Rs. 0"},
		{7, "Rs. 7"},
		{999, "Rs. 999"},
		{1000, "Rs. 1,000"},
		{99999, "Rs. 99,999"},
		{100000, "Rs. 1,00,000"},
		{1293102, "Rs. 12,93,102"},
		{10000000, "Rs. 1,00,00,000"},
		{123456789, "Rs. 12,34,56,789"},
		{900000.4, "Rs. 9,00,000"},
		{-393102, "Rs. -3,93,102"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatCurrency(c.amount), "amount %v", c.amount)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "15/03/2026", FormatDate(d))
}

func TestFormatArea(t *testing.T) {
	assert.Equal(t, "N/A sq.ft", FormatArea(nil))

	v := 1450.0
	assert.Equal(t, "1450 sq.ft", FormatArea(&v))

	v = 1450.5
	assert.Equal(t, "1450.5 sq.ft", FormatArea(&v))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "N/A", Display(nil))

	s := ""
	assert.Equal(t, "N/A", Display(&s))

	s = "ABCDE1234F"
	assert.Equal(t, "ABCDE1234F", Display(&s))
}
