package value

import "io"

// SExpr is an ordered sequence of values evaluated as a call site.
type SExpr struct{ Items []Object }

// QExpr is an ordered sequence of values held inert: data, not code.
type QExpr struct{ Items []Object }

// NewSExpr builds an SExpr from the given cells.
func NewSExpr(items ...Object) *SExpr { return &SExpr{Items: items} }

// NewQExpr builds a QExpr from the given cells.
func NewQExpr(items ...Object) *QExpr { return &QExpr{Items: items} }

// EmptySExpr returns the empty S-expression `()`.
func EmptySExpr() *SExpr { return &SExpr{} }

// EmptyQExpr returns the empty Q-expression `{}`.
func EmptyQExpr() *QExpr { return &QExpr{} }

// --- SExpr

func (s *SExpr) IsNil() bool  { return s == nil || len(s.Items) == 0 }
func (s *SExpr) IsAtom() bool { return s.IsNil() }
func (s *SExpr) String() string {
	return Repr(s)
}
func (s *SExpr) Clone() Object {
	if s == nil {
		return s
	}
	return &SExpr{Items: cloneItems(s.Items)}
}
func (s *SExpr) IsEqual(other Object) bool {
	o, ok := other.(*SExpr)
	return ok && itemsEqual(s.cells(), o.cells())
}
func (s *SExpr) Print(w io.Writer) (int, error) { return printCells(w, "(", ")", s.cells()) }

// Len returns the number of cells.
func (s *SExpr) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Items)
}

// PopFirst removes and returns the first cell.
func (s *SExpr) PopFirst() Object {
	v := s.Items[0]
	s.Items = s.Items[1:]
	return v
}

// SetFirst replaces the first cell in place.
func (s *SExpr) SetFirst(v Object) { s.Items[0] = v }

// ToQExpr retags this SExpr as a QExpr without copying the backing cells,
// implementing the evaluator's quoting-call retag step.
func (s *SExpr) ToQExpr() *QExpr { return &QExpr{Items: s.Items} }

func (s *SExpr) cells() []Object {
	if s == nil {
		return nil
	}
	return s.Items
}

// --- QExpr

func (q *QExpr) IsNil() bool  { return q == nil || len(q.Items) == 0 }
func (q *QExpr) IsAtom() bool { return q.IsNil() }
func (q *QExpr) String() string {
	return Repr(q)
}
func (q *QExpr) Clone() Object {
	if q == nil {
		return q
	}
	return &QExpr{Items: cloneItems(q.Items)}
}
func (q *QExpr) IsEqual(other Object) bool {
	o, ok := other.(*QExpr)
	return ok && itemsEqual(q.cells(), o.cells())
}
func (q *QExpr) Print(w io.Writer) (int, error) { return printCells(w, "{", "}", q.cells()) }

// Len returns the number of cells.
func (q *QExpr) Len() int {
	if q == nil {
		return 0
	}
	return len(q.Items)
}

// PopFirst removes and returns the first cell.
func (q *QExpr) PopFirst() Object {
	v := q.Items[0]
	q.Items = q.Items[1:]
	return v
}

// PopLast removes and returns the last cell.
func (q *QExpr) PopLast() Object {
	n := len(q.Items) - 1
	v := q.Items[n]
	q.Items = q.Items[:n]
	return v
}

// Append adds a cell to the end.
func (q *QExpr) Append(v Object) { q.Items = append(q.Items, v) }

// Prepend adds a cell to the front.
func (q *QExpr) Prepend(v Object) { q.Items = append([]Object{v}, q.Items...) }

// Extend appends all cells of other to this QExpr.
func (q *QExpr) Extend(other *QExpr) { q.Items = append(q.Items, other.cells()...) }

// ToSExpr retags this QExpr as an SExpr without copying the backing cells,
// implementing eval_qexpr's bridge to eval_sexpr.
func (q *QExpr) ToSExpr() *SExpr { return &SExpr{Items: q.Items} }

func (q *QExpr) cells() []Object {
	if q == nil {
		return nil
	}
	return q.Items
}

// Symbols returns the QExpr's cells as Symbols. ok is false if any cell is
// not a Symbol.
func (q *QExpr) Symbols() (syms []Symbol, ok bool) {
	for _, it := range q.cells() {
		sym, isSym := GetSymbol(it)
		if !isSym {
			return nil, false
		}
		syms = append(syms, sym)
	}
	return syms, true
}

// --- shared helpers

func cloneItems(items []Object) []Object {
	if items == nil {
		return nil
	}
	out := make([]Object, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

func itemsEqual(a, b []Object) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].IsEqual(b[i]) {
			return false
		}
	}
	return true
}

func printCells(w io.Writer, open, shut string, items []Object) (int, error) {
	length, err := io.WriteString(w, open)
	if err != nil {
		return length, err
	}
	for i, it := range items {
		if i > 0 {
			l, err := io.WriteString(w, " ")
			length += l
			if err != nil {
				return length, err
			}
		}
		l, err := Print(w, it)
		length += l
		if err != nil {
			return length, err
		}
	}
	l, err := io.WriteString(w, shut)
	length += l
	return length, err
}

// GetQExpr returns obj as a *QExpr, if possible.
func GetQExpr(obj Object) (*QExpr, bool) {
	if obj == nil {
		return EmptyQExpr(), true
	}
	q, ok := obj.(*QExpr)
	return q, ok
}

// GetSExpr returns obj as an *SExpr, if possible.
func GetSExpr(obj Object) (*SExpr, bool) {
	s, ok := obj.(*SExpr)
	return s, ok
}
