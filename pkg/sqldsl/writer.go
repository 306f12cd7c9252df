package sqldsl

import (
	"strconv"
	"strings"
)

// Writer accumulates rendered SQL and, in bind mode, the arguments referenced
// by positional placeholders.
type Writer struct {
	buf    strings.Builder
	bind   bool
	offset int
	args   []any
}

// NewWriter returns a Writer that inlines values as literals.
func NewWriter() *Writer {
	return &Writer{}
}

// NewBindWriter returns a Writer that renders values as placeholders.
// Numbering starts at offset+1 so fragments can be appended to a statement
// that already has offset arguments.
func NewBindWriter(offset int) *Writer {
	return &Writer{bind: true, offset: offset}
}

// WriteString appends raw SQL text.
func (w *Writer) WriteString(s string) {
	w.buf.WriteString(s)
}

// WriteExpr renders e into the writer.
func (w *Writer) WriteExpr(e Expr) {
	e.WriteSQL(w)
}

// WriteList renders exprs separated by sep.
func (w *Writer) WriteList(exprs []Expr, sep string) {
	for i, e := range exprs {
		if i > 0 {
			w.buf.WriteString(sep)
		}
		e.WriteSQL(w)
	}
}

// WriteValue renders a value. In bind mode v is recorded and a placeholder is
// written; otherwise literal is written as-is.
func (w *Writer) WriteValue(v any, literal string) {
	if !w.bind {
		w.buf.WriteString(literal)
		return
	}
	w.args = append(w.args, v)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(w.offset + len(w.args)))
}

// Binding reports whether the writer renders placeholders.
func (w *Writer) Binding() bool {
	return w.bind
}

// String returns the SQL rendered so far.
func (w *Writer) String() string {
	return w.buf.String()
}

// Args returns the bound arguments in placeholder order.
func (w *Writer) Args() []any {
	return w.args
}

// SQL renders e with values inlined as literals.
func SQL(e Expr) string {
	w := NewWriter()
	e.WriteSQL(w)
	return w.String()
}

// Bind renders e with $n placeholders and returns the arguments in order.
func Bind(e Expr) (string, []any) {
	return BindFrom(e, 0)
}

// BindFrom is Bind with placeholder numbering continuing after offset.
func BindFrom(e Expr, offset int) (string, []any) {
	w := NewBindWriter(offset)
	e.WriteSQL(w)
	return w.String(), w.Args()
}
