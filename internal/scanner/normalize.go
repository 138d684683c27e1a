package scanner

import (
	"regexp"
	"strings"
)

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Normalize converts \r\n and \r to \n and makes sure the text ends with a
// newline. Empty input yields a single newline.
func Normalize(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content
}
