package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatThousands(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{15234, "15,234"},
		{1234567, "1,234,567"},
		{1000000000, "1,000,000,000"},
		{-42, "-42"},
		{-1234, "-1,234"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatThousands(tc.in), "FormatThousands(%d)", tc.in)
	}
}
