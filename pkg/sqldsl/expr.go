package sqldsl

import (
	"fmt"
	"strconv"

	"github.com/lib/pq"
)

// Expr is the interface that all SQL expression types implement.
type Expr interface {
	WriteSQL(w *Writer)
}

// Col represents a table column reference (e.g., d.body).
type Col struct {
	Table  string
	Column string
}

// WriteSQL renders the column reference.
func (c Col) WriteSQL(w *Writer) {
	if c.Table != "" {
		w.WriteString(c.Table)
		w.WriteString(".")
	}
	w.WriteString(c.Column)
}

// Lit represents a text value. It is bound as a parameter in bind mode and
// rendered as a quoted literal otherwise.
type Lit string

// WriteSQL renders the literal.
func (l Lit) WriteSQL(w *Writer) {
	w.WriteValue(string(l), pq.QuoteLiteral(string(l)))
}

// Arg represents an arbitrary bindable value.
type Arg struct {
	Value any
}

// WriteSQL renders the argument.
func (a Arg) WriteSQL(w *Writer) {
	w.WriteValue(a.Value, inlineLiteral(a.Value))
}

// inlineLiteral renders v the way PostgreSQL would parse it back.
func inlineLiteral(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case string:
		return pq.QuoteLiteral(x)
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return pq.QuoteLiteral(fmt.Sprint(x))
	}
}

// Raw is an escape hatch for arbitrary SQL expressions.
type Raw string

// WriteSQL renders the raw SQL as-is.
func (r Raw) WriteSQL(w *Writer) {
	w.WriteString(string(r))
}

// Int represents an integer constant. Constants are never bound.
type Int int

// WriteSQL renders the integer.
func (i Int) WriteSQL(w *Writer) {
	w.WriteString(strconv.Itoa(int(i)))
}

// Bool represents a boolean constant.
type Bool bool

// WriteSQL renders the boolean.
func (b Bool) WriteSQL(w *Writer) {
	if b {
		w.WriteString("TRUE")
		return
	}
	w.WriteString("FALSE")
}

// Null represents SQL NULL.
type Null struct{}

// WriteSQL renders NULL.
func (Null) WriteSQL(w *Writer) {
	w.WriteString("NULL")
}

// Func represents a SQL function call.
type Func struct {
	Name string
	Args []Expr
}

// WriteSQL renders the function call.
func (f Func) WriteSQL(w *Writer) {
	w.WriteString(f.Name)
	w.WriteString("(")
	w.WriteList(f.Args, ", ")
	w.WriteString(")")
}

// Infix represents a binary operator application, always parenthesized so
// nested operators keep their grouping regardless of precedence.
//
// Example: Infix{Left: v, Op: "@@", Right: q} renders (v @@ q)
type Infix struct {
	Left  Expr
	Op    string
	Right Expr
}

// WriteSQL renders the operator expression.
func (i Infix) WriteSQL(w *Writer) {
	w.WriteString("(")
	i.Left.WriteSQL(w)
	w.WriteString(" " + i.Op + " ")
	i.Right.WriteSQL(w)
	w.WriteString(")")
}

// Prefix represents a unary prefix operator application: (op expr).
type Prefix struct {
	Op   string
	Expr Expr
}

// WriteSQL renders the prefix expression.
func (p Prefix) WriteSQL(w *Writer) {
	w.WriteString("(" + p.Op + " ")
	p.Expr.WriteSQL(w)
	w.WriteString(")")
}

// Cast represents a PostgreSQL type cast: expr::type.
type Cast struct {
	Expr Expr
	Type string
}

// WriteSQL renders the cast.
func (c Cast) WriteSQL(w *Writer) {
	c.Expr.WriteSQL(w)
	w.WriteString("::" + c.Type)
}

// Alias wraps an expression with an alias (expr AS alias).
type Alias struct {
	Expr Expr
	Name string
}

// WriteSQL renders the aliased expression.
func (a Alias) WriteSQL(w *Writer) {
	a.Expr.WriteSQL(w)
	w.WriteString(" AS " + a.Name)
}

// Paren wraps an expression in parentheses.
type Paren struct {
	Expr Expr
}

// WriteSQL renders the parenthesized expression.
func (p Paren) WriteSQL(w *Writer) {
	w.WriteString("(")
	p.Expr.WriteSQL(w)
	w.WriteString(")")
}

// SelectAs creates an aliased column expression (expr AS alias).
func SelectAs(expr Expr, alias string) Alias {
	return Alias{Expr: expr, Name: alias}
}
