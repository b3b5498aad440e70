// Package reader translates a parse tree into a Value by walking a tree of
// scanned tokens, consuming an externally-supplied parse tree instead of
// scanning runes itself, since tokenizing is the concrete parser package's
// job here.
package reader

import (
	"strconv"
	"strings"

	"github.com/jfpedroza/lispy/errs"
	"github.com/jfpedroza/lispy/value"
)

// ParseNode is the minimal parse-tree node shape the reader consumes. A
// concrete grammar implementation (see the parser package) builds trees of
// these.
type ParseNode interface {
	Tag() string
	Contents() string
	Children() []ParseNode
}

// Read translates the root of a parse tree into a Value. The root node is
// expected to carry the grammar's top-level tag (conventionally ">"), and is
// treated the same as an explicit sexpr node: its processed children become
// the cells of the resulting SExpr.
func Read(root ParseNode) value.Object {
	return value.NewSExpr(readChildren(root)...)
}

// readNode dispatches on a substring match against the node's tag, matching
// the external grammar's convention of composite tag names (e.g.
// "expr|integer|regex:...").
func readNode(n ParseNode) value.Object {
	tag := n.Tag()
	switch {
	case strings.Contains(tag, "integer"):
		return readInteger(n)
	case strings.Contains(tag, "decimal"):
		return readDecimal(n)
	case strings.Contains(tag, "string"):
		return readString(n)
	case strings.Contains(tag, "cname"):
		return value.CName(n.Contents())
	case strings.Contains(tag, "symbol"):
		return value.Symbol(n.Contents())
	case strings.Contains(tag, "qexpr"):
		return value.NewQExpr(readChildren(n)...)
	default:
		return value.NewSExpr(readChildren(n)...)
	}
}

func readInteger(n ParseNode) value.Object {
	i, err := strconv.ParseInt(n.Contents(), 10, 64)
	if err != nil {
		return errs.BadNumber()
	}
	return value.Integer(i)
}

func readDecimal(n ParseNode) value.Object {
	f, err := strconv.ParseFloat(n.Contents(), 64)
	if err != nil {
		return errs.BadNumber()
	}
	return value.Decimal(f)
}

func readString(n ParseNode) value.Object {
	raw := n.Contents()
	raw = strings.TrimPrefix(raw, `"`)
	raw = strings.TrimSuffix(raw, `"`)
	return value.String(value.Unescape(raw))
}

// readChildren reads every non-skipped child of n into a cell slice.
func readChildren(n ParseNode) []value.Object {
	var cells []value.Object
	for _, c := range n.Children() {
		if skipChild(c) {
			continue
		}
		cells = append(cells, readNode(c))
	}
	return cells
}

// skipChild reports whether a child node is grammar punctuation the reader
// must not turn into a Value: literal brackets, regex anchors, or comments.
func skipChild(n ParseNode) bool {
	switch n.Contents() {
	case "(", ")", "{", "}":
		return true
	}
	tag := n.Tag()
	return strings.Contains(tag, "regex") || strings.Contains(tag, "comment")
}
