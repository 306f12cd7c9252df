package sqltype

import "github.com/pthm/pgfts/pkg/sqldsl"

// Expression is a SQL expression whose result has type T.
type Expression[T SQLType] interface {
	sqldsl.Expr
	// SQLType returns the marker for the expression's result type.
	SQLType() T
	// AsExpression returns the expression itself.
	AsExpression() Expression[T]
}

// AsExpression is implemented by values that can stand in for an expression of type T.
type AsExpression[T SQLType] interface {
	AsExpression() Expression[T]
}

// node tags an untyped expression with T.
type node[T SQLType] struct {
	expr sqldsl.Expr
}

func (n node[T]) WriteSQL(w *sqldsl.Writer) { n.expr.WriteSQL(w) }

func (n node[T]) SQLType() T {
	var t T
	return t
}

func (n node[T]) AsExpression() Expression[T] { return n }

// Wrap asserts that e produces a value of type T. The assertion is unchecked:
// it is the caller's declaration, the same way a function signature is.
func Wrap[T SQLType](e sqldsl.Expr) Expression[T] {
	if typed, ok := e.(Expression[T]); ok {
		return typed
	}
	return node[T]{expr: e}
}

// Cast renders e::T and types the result as T.
func Cast[T SQLType](e sqldsl.Expr) Expression[T] {
	return node[T]{expr: sqldsl.Cast{Expr: e, Type: NameOf[T]()}}
}

// Null returns NULL typed as T, rendered with an explicit cast so PostgreSQL
// resolves overloads the same way.
func Null[T SQLType]() Expression[T] {
	return Cast[T](sqldsl.Null{})
}

// Column is a typed column reference.
type Column[T SQLType] struct {
	Table string
	Name  string
}

// Col creates a typed column reference. table may be empty.
func Col[T SQLType](table, name string) Column[T] {
	return Column[T]{Table: table, Name: name}
}

// WriteSQL renders the column reference.
func (c Column[T]) WriteSQL(w *sqldsl.Writer) {
	sqldsl.Col{Table: c.Table, Column: c.Name}.WriteSQL(w)
}

// SQLType implements Expression[T].
func (c Column[T]) SQLType() T {
	var t T
	return t
}

// AsExpression implements AsExpression[T].
func (c Column[T]) AsExpression() Expression[T] { return c }

// Predicate converts a boolean expression into a plain sqldsl.Expr for use in
// WHERE clauses and logical combinators.
func Predicate(e AsExpression[Bool]) sqldsl.Expr {
	return e.AsExpression()
}

// Compile-time checks.
var (
	_ Expression[Text] = node[Text]{}
	_ Expression[Text] = Column[Text]{}
)
