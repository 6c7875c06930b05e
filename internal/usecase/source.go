package usecase

import (
	"strings"
)

// HasJavadoc reports whether a JavaDoc block sits directly above the
// 1-indexed declaration line. Blank lines are skipped; the first other line
// decides. A line or block comment in between counts as undocumented.
func HasJavadoc(lines []string, line int) bool {
	for i := line - 2; i >= 0 && i < len(lines); i-- {
		text := strings.TrimSpace(lines[i])
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "/**") {
			return true
		}
		if strings.HasPrefix(text, "//") || strings.HasPrefix(text, "/*") {
			return false
		}
		if strings.HasSuffix(text, "*/") {
			return opensJavadoc(lines, i)
		}
		return false
	}
	return false
}

// opensJavadoc follows a block comment ending on line end back to the line
// that opened it.
func opensJavadoc(lines []string, end int) bool {
	for i := end; i >= 0; i-- {
		text := strings.TrimSpace(lines[i])
		if strings.Contains(text, "/*") {
			return strings.HasPrefix(text, "/**")
		}
	}
	return false
}

// ExtractMethodBody returns the declaration starting at the 1-indexed line up
// to the line whose closing brace balances the first opening one. Braces are
// counted per character, so braces in literals and comments count too.
// A declaration that ends with ';' before any brace (abstract or interface
// method) stops there.
func ExtractMethodBody(lines []string, line int) string {
	if line < 1 || line > len(lines) {
		return ""
	}

	var body []string
	depth := 0
	started := false

	for _, l := range lines[line-1:] {
		body = append(body, l)

		depth += strings.Count(l, "{")
		depth -= strings.Count(l, "}")

		if strings.Contains(l, "{") {
			started = true
		}

		if started && depth == 0 {
			break
		}
		if !started && strings.HasSuffix(strings.TrimSpace(l), ";") {
			break
		}
	}

	return strings.Join(body, "\n")
}

// InsertJavadoc returns a new buffer with comment placed above the 1-indexed
// declaration line and above any annotation lines attached to it. Each
// non-empty comment line is trimmed and indented like the declaration, and
// ends in '\r' when the declaration line does.
func InsertJavadoc(lines []string, line int, comment string) []string {
	if line < 1 || line > len(lines) {
		return lines
	}

	insertAt := line - 1
	for insertAt > 0 && strings.HasPrefix(strings.TrimSpace(lines[insertAt-1]), "@") {
		insertAt--
	}

	indent := leadingWhitespace(lines[line-1])
	eol := ""
	if strings.HasSuffix(lines[line-1], "\r") {
		eol = "\r"
	}

	var docLines []string
	for _, l := range strings.Split(comment, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		docLines = append(docLines, indent+l+eol)
	}

	out := make([]string, 0, len(lines)+len(docLines))
	out = append(out, lines[:insertAt]...)
	out = append(out, docLines...)
	out = append(out, lines[insertAt:]...)
	return out
}

func leadingWhitespace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t\r\n\v\f"))]
}

// SplitLines splits file content into the line buffer. A trailing newline
// yields a trailing empty line so JoinLines restores it.
func SplitLines(content string) []string {
	return strings.Split(content, "\n")
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
