package codec

import "strings"

const (
	delimiter  = '|'
	escapeRune = '\\'
)

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`|`, `\|`,
	"\n", `\n`,
	"\r", `\r`,
)

// escape makes s safe to store between delimiters on a single line.
func escape(s string) string {
	return escaper.Replace(s)
}

// unescape reverses escape. Unknown sequences such as `\t` are kept as
// written so files saved before escaping existed still read back intact.
func unescape(s string) string {
	if !strings.ContainsRune(s, escapeRune) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != escapeRune || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}

		i++

		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case '|':
			b.WriteByte('|')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(escapeRune)
			b.WriteByte(s[i])
		}
	}

	return b.String()
}

// split cuts a record line on unescaped delimiters. Escape sequences are
// left in the fields for unescape to resolve.
func split(line string) []string {
	var (
		fields []string
		start  int
	)

	for i := 0; i < len(line); i++ {
		switch line[i] {
		case escapeRune:
			i++
		case delimiter:
			fields = append(fields, line[start:i])
			start = i + 1
		}
	}

	return append(fields, line[start:])
}
