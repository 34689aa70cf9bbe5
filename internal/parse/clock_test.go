package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  Clock
		expectErr bool
	}{
		{name: "Zero padded", raw: "06:32", expected: Clock{Hour: 6, Minute: 32}},
		{name: "Single digit hour", raw: "6:32", expected: Clock{Hour: 6, Minute: 32}},
		{name: "Compact", raw: "0632", expected: Clock{Hour: 6, Minute: 32}},
		{name: "Midnight", raw: "00:00", expected: Clock{Hour: 0, Minute: 0}},
		{name: "Surrounding spaces", raw: "  23:59 ", expected: Clock{Hour: 23, Minute: 59}},
		{name: "AM suffix", raw: "6:32 AM", expected: Clock{Hour: 6, Minute: 32}},
		{name: "Lower case pm", raw: "10:15pm", expected: Clock{Hour: 22, Minute: 15}},
		{name: "Dotted meridiem", raw: "7 p.m.", expected: Clock{Hour: 19, Minute: 0}},
		{name: "Twelve AM", raw: "12:10 AM", expected: Clock{Hour: 0, Minute: 10}},
		{name: "Twelve PM", raw: "12:10 PM", expected: Clock{Hour: 12, Minute: 10}},
		{name: "Hour out of range", raw: "24:00", expectErr: true},
		{name: "Minute out of range", raw: "06:60", expectErr: true},
		{name: "Thirteen PM", raw: "13:00 PM", expectErr: true},
		{name: "Zero AM", raw: "0 AM", expectErr: true},
		{name: "Garbage", raw: "soon", expectErr: true},
		{name: "Empty", raw: "", expectErr: true},
		{name: "Three digits", raw: "632", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseClock(tc.raw)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrInvalidClock)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, parsed)
			}
		})
	}
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "06:32", Clock{Hour: 6, Minute: 32}.String())
	assert.Equal(t, "00:05", Clock{Minute: 5}.String())
}
