package dump

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupEncoding_DecodeString(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		raw      string
		expected string
	}{
		{name: "utf-16be default", encoding: "", raw: "AEwAYQBuAGQAaQBuAGcAIABTAGkAdABlAAA=", expected: "Landing Site"},
		{name: "utf-16le", encoding: "UTF-16LE", raw: "UwBrAHkAIABUAGUAbQBwAGwAZQAAAA==", expected: "Sky Temple"},
		{name: "windows-1252 stops at nul", encoding: "windows-1252", raw: "Q2Fm6QBqdW5r", expected: "Café"},
		{name: "charmap display name", encoding: "Windows 1252", raw: "Q2Fm6QBqdW5r", expected: "Café"},
		{name: "utf-8", encoding: "utf_8", raw: base64.StdEncoding.EncodeToString([]byte("Agon Wastes")), expected: "Agon Wastes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := LookupEncoding(tt.encoding)
			require.NoError(t, err)

			raw, err := base64.StdEncoding.DecodeString(tt.raw)
			require.NoError(t, err)

			s, err := decodeString(enc, raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestLookupEncoding_Unknown(t *testing.T) {
	_, err := LookupEncoding("utf-32")
	require.Error(t, err)
}

func TestListEncodings(t *testing.T) {
	list := ListEncodings()
	assert.Equal(t, []string{"utf-8", "utf-16be", "utf-16le"}, list[:3])
	assert.Contains(t, list, "Windows 1252")
	for _, name := range list {
		_, err := LookupEncoding(name)
		assert.NoError(t, err, name)
	}
}
