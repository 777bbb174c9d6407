package format

import "regexp"

const mdSpecials = "_*~`>|"

var mdEscapeRe = regexp.MustCompile("[" + regexp.QuoteMeta(mdSpecials) + "]")

// EscapeMarkdown escapes Discord markdown control characters so stored
// user content renders literally.
func EscapeMarkdown(text string) string {
	return mdEscapeRe.ReplaceAllString(text, `\$0`)
}
