package extract

import "regexp"

var (
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineCommentRe  = regexp.MustCompile(`//[^\n]*`)
)

// StripComments removes block comments (/* ... */, non-greedy, possibly
// spanning lines) and line comments (// to end of line) from source text.
// Everything outside comments is preserved unchanged.
//
// Known limitation: delimiters inside string literals are treated as real
// comment markers, so `"http://example.com"` loses its path. Accepted for
// the regex-driven grammar subset.
func StripComments(source string) string {
	source = blockCommentRe.ReplaceAllString(source, "")
	return lineCommentRe.ReplaceAllString(source, "")
}
