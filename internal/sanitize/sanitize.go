package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaxLength is the byte limit applied by Filename.
const DefaultMaxLength = 200

var unsafeReplacer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// letters without a canonical decomposition
var letterReplacer = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"ł", "l", "Ł", "L",
	"þ", "th", "Þ", "TH",
	"ı", "i",
)

type Sanitizer struct {
	MaxLength int
}

// New returns a Sanitizer truncating at maxLength bytes, or at
// DefaultMaxLength when maxLength is not positive.
func New(maxLength int) *Sanitizer {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	return &Sanitizer{MaxLength: maxLength}
}

// Filename sanitizes with the default length limit.
func Filename(name string) string {
	return New(DefaultMaxLength).Filename(name)
}

// Filename makes name safe to use as a file name: ASCII only, no path or
// shell-reserved characters, no boundary whitespace, at most MaxLength bytes.
// Interior whitespace is kept as is.
func (s *Sanitizer) Filename(name string) string {
	name = ASCII(name)

	name = unsafeReplacer.Replace(name)

	name = strings.TrimSpace(name)

	maxLength := s.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	if len(name) > maxLength {
		name = strings.TrimRightFunc(name[:maxLength], unicode.IsSpace)
	}

	return name
}

// ASCII folds accented letters to their base letter and drops every other
// non-ASCII rune.
func ASCII(s string) string {
	s = letterReplacer.Replace(strings.ToValidUTF8(s, ""))

	// transformers keep state, build a fresh chain per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}

	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)
}
