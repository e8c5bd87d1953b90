package str

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ghetzel/go-stockutil/stringutil"
)

// ToString converts v to its string form. nil becomes "".
func ToString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	}
	if s, err := stringutil.ToString(v); err == nil {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Split splits the string form of v around sep. An empty separator splits
// into single characters. A positive limit caps the number of pieces
// returned; the remainder is discarded.
//
//	Split("a-b-c", "-")    // → [a b c]
//	Split("a-b-c", "-", 2) // → [a b]
func Split(v any, sep string, limit ...int) []string {
	s := ToString(v)
	parts := strings.Split(s, sep)
	if len(limit) > 0 && limit[0] >= 0 && limit[0] < len(parts) {
		parts = parts[:limit[0]]
	}
	return parts
}

// Trim removes leading and trailing white space.
func Trim(v any) string { return strings.TrimSpace(ToString(v)) }

// TrimStart removes leading white space.
func TrimStart(v any) string { return strings.TrimLeftFunc(ToString(v), unicode.IsSpace) }

// TrimEnd removes trailing white space.
func TrimEnd(v any) string { return strings.TrimRightFunc(ToString(v), unicode.IsSpace) }

// Repeat returns the string form of v repeated count times. A negative count
// yields "".
func Repeat(v any, count int) string {
	if count < 0 {
		return ""
	}
	return strings.Repeat(ToString(v), count)
}

// PadStart pads the start of the string form of v with pad (default " ")
// until it is length runes long.
//
//	PadStart("7", 3, "0") // → "007"
func PadStart(v any, length int, pad ...string) string {
	s := ToString(v)
	return fill(s, length, pad) + s
}

// PadEnd pads the end of the string form of v with pad (default " ").
func PadEnd(v any, length int, pad ...string) string {
	s := ToString(v)
	return s + fill(s, length, pad)
}

func fill(s string, length int, pad []string) string {
	p := " "
	if len(pad) > 0 {
		p = pad[0]
	}
	diff := length - utf8.RuneCountInString(s)
	if diff < 1 || p == "" {
		return ""
	}
	runes := []rune(strings.Repeat(p, diff/utf8.RuneCountInString(p)+1))
	return string(runes[:diff])
}

// ─────────────────────────────────────────────────────────────────────────────
// Case conversion
// ─────────────────────────────────────────────────────────────────────────────

// Capitalize upper-cases the first character and lower-cases the rest.
func Capitalize(v any) string {
	return UpperFirst(strings.ToLower(ToString(v)))
}

// UpperFirst upper-cases the first character.
func UpperFirst(v any) string {
	s := ToString(v)
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lower-cases the first character.
func LowerFirst(v any) string {
	s := ToString(v)
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

var separators = regexp.MustCompile(`[\s\-_.]+`)

// Words splits the string form of v into its words: separators (space,
// '-', '_', '.') end a word, an upper-case letter after a lower-case one
// starts a new word, and runs of capitals stay together.
//
//	Words("getMyURL")          // → [get My URL]
//	Words("webkit-perspective") // → [webkit perspective]
func Words(v any) []string {
	out := make([]string, 0)
	for _, chunk := range separators.Split(ToString(v), -1) {
		out = append(out, splitCamel(chunk)...)
	}
	return out
}

func splitCamel(s string) []string {
	runes := []rune(s)
	out := make([]string, 0, 1)
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := unicode.IsUpper(cur) && !unicode.IsUpper(prev)
		if unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			// "URLValue": the last capital starts the next word
			boundary = i-start > 1 || boundary
		}
		if boundary {
			out = append(out, string(runes[start:i]))
			start = i
		}
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	return out
}

// KebabCase joins the lower-cased words with '-'.
//
//	KebabCase("webkitPerspectiveOriginX") // → "webkit-perspective-origin-x"
func KebabCase(v any) string {
	return strings.ToLower(strings.Join(Words(v), "-"))
}

// SnakeCase joins the lower-cased words with '_'.
func SnakeCase(v any) string {
	return strings.ToLower(strings.Join(Words(v), "_"))
}

// PascalCase capitalizes every word and joins them.
//
//	PascalCase("get-my-url") // → "GetMyUrl"
func PascalCase(v any) string {
	var b strings.Builder
	for _, w := range Words(v) {
		b.WriteString(UpperFirst(strings.ToLower(w)))
	}
	return b.String()
}

// CamelCase is [PascalCase] with a lower-case first character.
func CamelCase(v any) string {
	return LowerFirst(PascalCase(v))
}
