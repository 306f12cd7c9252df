package sqltype

import "github.com/pthm/pgfts/pkg/sqldsl"

// String is a Go string used as a text value. It binds as a parameter.
type String string

// WriteSQL renders the value as a bound parameter or an inline literal.
func (s String) WriteSQL(w *sqldsl.Writer) {
	sqldsl.Lit(s).WriteSQL(w)
}

// SQLType implements Expression[Text].
func (s String) SQLType() Text {
	return Text{}
}

// AsExpression implements AsExpression[Text].
func (s String) AsExpression() Expression[Text] {
	return s
}

// Int is a Go int32 used as an int4 value.
type Int int32

// WriteSQL renders the value as a bound parameter or an inline literal.
func (i Int) WriteSQL(w *sqldsl.Writer) {
	sqldsl.Arg{Value: int32(i)}.WriteSQL(w)
}

// SQLType implements Expression[Integer].
func (i Int) SQLType() Integer {
	return Integer{}
}

// AsExpression implements AsExpression[Integer].
func (i Int) AsExpression() Expression[Integer] {
	return i
}

// Real is a Go float32 used as a float4 value.
type Real float32

// WriteSQL renders the value as a bound parameter or an inline literal.
func (r Real) WriteSQL(w *sqldsl.Writer) {
	sqldsl.Arg{Value: float32(r)}.WriteSQL(w)
}

// SQLType implements Expression[Float].
func (r Real) SQLType() Float {
	return Float{}
}

// AsExpression implements AsExpression[Float].
func (r Real) AsExpression() Expression[Float] {
	return r
}

// Boolean is a Go bool used as a boolean value.
type Boolean bool

// WriteSQL renders the value as a bound parameter or an inline literal.
func (b Boolean) WriteSQL(w *sqldsl.Writer) {
	sqldsl.Arg{Value: bool(b)}.WriteSQL(w)
}

// SQLType implements Expression[Bool].
func (b Boolean) SQLType() Bool {
	return Bool{}
}

// AsExpression implements AsExpression[Bool].
func (b Boolean) AsExpression() Expression[Bool] {
	return b
}
