package jobboard

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

var htmlTagRe = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9]*(\s[^<>]*)?/?>`)

// plainText converts HTML markup, as exported by most job boards, to markdown
// so that tags do not leak into the matched text. Other input is returned as is.
func plainText(s string) string {
	if !htmlTagRe.MatchString(s) {
		return s
	}

	md, err := htmltomarkdown.ConvertString(s)
	if err != nil || strings.TrimSpace(md) == "" {
		return s
	}
	return strings.TrimSpace(md)
}
