package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComments_LineComment(t *testing.T) {
	t.Parallel()

	src := "type Dog struct { // a dog\n\tName string\n}"
	got := StripComments(src)

	assert.Equal(t, "type Dog struct { \n\tName string\n}", got)
}

func TestStripComments_BlockComment(t *testing.T) {
	t.Parallel()

	src := "type /* noise */ Dog struct {}"
	got := StripComments(src)

	assert.Equal(t, "type  Dog struct {}", got)
}

func TestStripComments_MultilineBlock(t *testing.T) {
	t.Parallel()

	src := "/*\nheader\ncomment\n*/\ntype Dog struct {}"
	got := StripComments(src)

	assert.Equal(t, "\ntype Dog struct {}", got)
}

func TestStripComments_NonGreedy(t *testing.T) {
	t.Parallel()

	// Two block comments must not swallow the code between them.
	src := "/* a */ type Dog struct {} /* b */"
	got := StripComments(src)

	assert.Equal(t, " type Dog struct {} ", got)
}

func TestStripComments_PreservesCode(t *testing.T) {
	t.Parallel()

	src := "type Dog struct {\n\tName string\n}\n"
	assert.Equal(t, src, StripComments(src))
}

func TestStripComments_StringLiteralLimitation(t *testing.T) {
	t.Parallel()

	// Delimiters inside string literals are stripped too. This documents
	// the accepted limitation rather than desired behavior.
	src := `url := "http://example.com"`
	got := StripComments(src)

	assert.Equal(t, `url := "http:`, got)
}
