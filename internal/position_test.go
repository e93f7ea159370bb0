package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParsePosition(t *testing.T) {
	tests := map[string]Position{
		"A1":     {Row: 0, Col: 0},
		"AB32":   {Row: 31, Col: 27},
		"Z25":    {Row: 24, Col: 25},
		"XFD16384": {Row: 16383, Col: 16383},
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, ParsePosition(in))
		})
	}
}

func Test_ParsePosition_invalid(t *testing.T) {
	tests := []string{
		"",
		"1A",
		"A",
		"A0",
		"A01",
		"a1",
		"XFE1",     // one column past the bound
		"A16385",   // one row past the bound
		"A1 ",
		" A1",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, NonePosition, ParsePosition(in))
		})
	}
}

func Test_Position_String(t *testing.T) {
	tests := map[Position]string{
		{Row: 0, Col: 0}:       "A1",
		{Row: 31, Col: 27}:     "AB32",
		{Row: 16383, Col: 16383}: "XFD16384",
	}
	for p, want := range tests {
		assert.Equal(t, want, p.String())
	}
	assert.Equal(t, "", NonePosition.String())
	assert.Equal(t, "", Position{Row: -1, Col: 0}.String())
	assert.Equal(t, "", Position{Row: 0, Col: MaxCols}.String())
}

func Test_Position_roundtrip(t *testing.T) {
	for _, label := range []string{"A1", "Z1", "AA1", "AZ51", "BA52", "ZZ701", "AAA702", "XFD16384"} {
		p := ParsePosition(label)
		assert.True(t, p.IsValid(), "expected %q to parse", label)
		assert.Equal(t, label, p.String())
	}
}

func decodeColumnValues() map[string]int {
	return map[string]int{
		"A":   0,
		"Z":   25,
		"AA":  26,
		"AZ":  51,
		"BA":  52,
		"ZZ":  701,
		"AAA": 702,
	}
}

func Test_decodeColumn(t *testing.T) {
	for in, want := range decodeColumnValues() {
		assert.Equal(t, want, decodeColumn(in))
	}
}

func Test_encodeColumn(t *testing.T) {
	for want, in := range decodeColumnValues() {
		assert.Equal(t, want, encodeColumn(in))
	}
}
