package dump

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used for raw string tables that name no encoding.
const DefaultEncoding = "utf-16be"

var unicodeEncodings = map[string]encoding.Encoding{
	"utf8":    unicode.UTF8,
	"utf16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
}

// normalizeEncodingName folds case and drops separators, so that
// "windows-1252", "Windows 1252" and "WINDOWS_1252" compare equal.
func normalizeEncodingName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

// LookupEncoding returns the text encoding with the given name. UTF-8,
// UTF-16 (big and little endian) and every single-byte charmap are known.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	key := normalizeEncodingName(name)
	if enc, ok := unicodeEncodings[key]; ok {
		return enc, nil
	}
	for _, enc := range charmap.All {
		if cm, ok := enc.(*charmap.Charmap); ok {
			if normalizeEncodingName(cm.String()) == key {
				return cm, nil
			}
		}
	}
	return nil, fmt.Errorf("unknown encoding %q", name)
}

// ListEncodings returns the names accepted by LookupEncoding.
func ListEncodings() []string {
	list := []string{"utf-8", "utf-16be", "utf-16le"}
	for _, enc := range charmap.All {
		if cm, ok := enc.(*charmap.Charmap); ok {
			list = append(list, cm.String())
		}
	}
	sort.Strings(list[3:])
	return list
}

// decodeString decodes raw bytes and cuts the result at the first NUL.
func decodeString(enc encoding.Encoding, raw []byte) (string, error) {
	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	s := string(decoded)
	if n := strings.IndexByte(s, 0); n >= 0 {
		s = s[:n]
	}
	return s, nil
}
