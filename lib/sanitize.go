package lib

import (
	"strconv"
	"strings"
)

// NormalizeDescription turns a raw submitted description into the canonical
// form stored and read aloud. Descriptions arrive from a JS form and may have
// been round-tripped through JSON, leaving literal escape sequences ("\n",
// "\t", "\u00e9") in the text. Decoding is best effort: if the text does not
// decode as an escaped literal it is used as-is. Line endings are then
// normalized unconditionally.
//
// The function is applied at the request boundary and again when the product
// is persisted; the persistence-time pass is the authoritative one. It is a
// fixed point for text already in canonical form, so the double application
// is safe.
func NormalizeDescription(raw string) string {
	if raw == "" {
		return raw
	}

	text := raw
	if decoded, err := decodeEscapes(raw); err == nil {
		text = decoded
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// decodeEscapes interprets s as the body of an escaped string literal.
// Characters that would terminate a literal (quotes and real control
// characters) are re-escaped first so that already-canonical text decodes to
// itself.
func decodeEscapes(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}

	quoted := strings.NewReplacer(
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	).Replace(s)

	return strconv.Unquote(`"` + quoted + `"`)
}
