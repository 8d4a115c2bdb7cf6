package selector

import (
	"fmt"
	"strings"
	"unicode"
)

// EscapeClass escapes characters in a class name that have a meaning in
// CSS selectors. The builder itself never rewrites fragment content, so
// callers feeding class names scraped from real documents have to escape
// them explicitly.
func EscapeClass(name string) string {
	if name == "" {
		return name
	}
	// https://www.itsupportguides.com/knowledge-base/website-tips/css-colon-in-id/
	name = strings.ReplaceAll(name, ":", "\\:")
	name = strings.ReplaceAll(name, ">", "\\>")
	name = strings.ReplaceAll(name, "[", "\\[")
	name = strings.ReplaceAll(name, "]", "\\]")
	name = strings.ReplaceAll(name, "/", "\\/")
	name = strings.ReplaceAll(name, "!", "\\!")
	name = strings.ReplaceAll(name, "%", "\\%")
	// https://stackoverflow.com/questions/45293534/css-class-starting-with-number-is-not-getting-applied
	if unicode.IsDigit(rune(name[0])) {
		name = fmt.Sprintf(`\3%c %s`, name[0], string(name[1:]))
	}
	return name
}
