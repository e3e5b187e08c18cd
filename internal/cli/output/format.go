package output

import (
	"strconv"
	"strings"
)

// FormatHeader returns a Markdown heading.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue returns a Markdown list item with a bold key.
func FormatKeyValue(key, value string) string {
	return "- **" + key + ":** " + value
}

// FormatChain renders values as "30 -> 20 -> 10 -> NULL" without styling.
func FormatChain(values []int) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(strconv.Itoa(v))
		b.WriteString(" -> ")
	}
	b.WriteString("NULL")
	return b.String()
}

// FormatValues renders values as "[30 20 10]".
func FormatValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
