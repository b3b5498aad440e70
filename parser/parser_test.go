package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfpedroza/lispy/parser"
)

func children(t *testing.T, src string) []string {
	t.Helper()
	tree, err := parser.ParseString(src, "<test>")
	require.NoError(t, err)
	var tags []string
	for _, c := range tree.Children() {
		tags = append(tags, c.Tag())
	}
	return tags
}

func TestParsesTopLevelForms(t *testing.T) {
	t.Parallel()
	tags := children(t, "(+ 1 2) {a b}")
	assert.Equal(t, []string{"sexpr", "qexpr"}, tags)
}

func TestParsesAtomKinds(t *testing.T) {
	t.Parallel()
	tree, err := parser.ParseString(`(1 -2 3.5 "hi" x .cmd)`, "<test>")
	require.NoError(t, err)
	sexpr := tree.Children()[0]
	kids := sexpr.Children()
	kids = kids[:len(kids)-1] // drop the trailing ")" close-bracket marker
	var tags, contents []string
	for _, c := range kids {
		tags = append(tags, c.Tag())
		contents = append(contents, c.Contents())
	}
	assert.Equal(t, []string{"integer", "integer", "decimal", "string", "symbol", "cname"}, tags)
	assert.Equal(t, []string{"1", "-2", "3.5", `"hi"`, "x", ".cmd"}, contents)
}

func TestSkipsComments(t *testing.T) {
	t.Parallel()
	tags := children(t, "; a top-level comment\n(+ 1 2) ; trailing\n")
	assert.Equal(t, []string{"sexpr"}, tags)
}

func TestSymbolAcceptsOperatorRunes(t *testing.T) {
	t.Parallel()
	tree, err := parser.ParseString("(-> foo_bar!)", "<test>")
	require.NoError(t, err)
	sexpr := tree.Children()[0]
	assert.Equal(t, "->", sexpr.Children()[0].Contents())
	assert.Equal(t, "foo_bar!", sexpr.Children()[1].Contents())
}

func TestUnterminatedSExprIsError(t *testing.T) {
	t.Parallel()
	_, err := parser.ParseString("(+ 1 2", "<test>")
	require.Error(t, err)
}
