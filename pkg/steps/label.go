package steps

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// GenerateLabel turns an identifier-style name into a display label:
// "loadModules" becomes "Load modules", "initBoardStateGenerator"
// becomes "Init board state generator". Word breaks are inserted
// before uppercase letters and before runs of digits, everything is
// lowercased, whitespace is collapsed, and the first character is
// uppercased. Applying it to its own output is a no-op.
func GenerateLabel(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	inDigits := false
	for _, r := range name {
		switch {
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
			inDigits = false
		case unicode.IsDigit(r):
			if !inDigits {
				b.WriteByte(' ')
			}
			b.WriteRune(r)
			inDigits = true
		default:
			b.WriteRune(unicode.ToLower(r))
			inDigits = false
		}
	}

	label := strings.Join(strings.Fields(b.String()), " ")
	if label == "" {
		return ""
	}

	first, size := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(first)) + label[size:]
}
