package sqltype

import "github.com/pthm/pgfts/pkg/sqldsl"

// FunctionSignature describes a declared SQL function.
type FunctionSignature struct {
	Name    string     `json:"name"`
	Params  []TypeInfo `json:"params"`
	Returns TypeInfo   `json:"returns"`
}

// String renders the signature as name(a, b) -> r.
func (s FunctionSignature) String() string {
	return s.Name + describe(s.Params) + " -> " + s.Returns.Name
}

// OperatorSignature describes a declared SQL operator. Left is nil for
// prefix operators.
type OperatorSignature struct {
	Name   string    `json:"name"`
	Token  string    `json:"token"`
	Left   *TypeInfo `json:"left,omitempty"`
	Right  TypeInfo  `json:"right"`
	Result TypeInfo  `json:"result"`
}

// Prefix reports whether the operator takes a single right operand.
func (s OperatorSignature) Prefix() bool {
	return s.Left == nil
}

// String renders the signature as (l TOKEN r) -> result.
func (s OperatorSignature) String() string {
	if s.Prefix() {
		return "(" + s.Token + " " + s.Right.Name + ") -> " + s.Result.Name
	}
	return "(" + s.Left.Name + " " + s.Token + " " + s.Right.Name + ") -> " + s.Result.Name
}

// Func1 declares a one-argument SQL function.
//
// Example:
//
//	strip := Func1[TsVector, TsVector]{Name: "strip"}
//	strip.Call(v) // strip(v)
type Func1[A, R SQLType] struct {
	Name string
}

// Call builds name(a).
func (f Func1[A, R]) Call(a AsExpression[A]) Expression[R] {
	return node[R]{expr: sqldsl.Func{Name: f.Name, Args: []sqldsl.Expr{a.AsExpression()}}}
}

// Signature reports the declaration.
func (f Func1[A, R]) Signature() FunctionSignature {
	return FunctionSignature{Name: f.Name, Params: []TypeInfo{InfoOf[A]()}, Returns: InfoOf[R]()}
}

// Func2 declares a two-argument SQL function.
type Func2[A, B, R SQLType] struct {
	Name string
}

// Call builds name(a, b).
func (f Func2[A, B, R]) Call(a AsExpression[A], b AsExpression[B]) Expression[R] {
	return node[R]{expr: sqldsl.Func{Name: f.Name, Args: []sqldsl.Expr{a.AsExpression(), b.AsExpression()}}}
}

// Signature reports the declaration.
func (f Func2[A, B, R]) Signature() FunctionSignature {
	return FunctionSignature{Name: f.Name, Params: []TypeInfo{InfoOf[A](), InfoOf[B]()}, Returns: InfoOf[R]()}
}

// Infix declares a binary operator with fixed operand and result types.
// Name identifies the operator in listings; Token is the SQL spelling.
type Infix[L, R, Res SQLType] struct {
	Name  string
	Token string
}

// Apply builds (left TOKEN right).
func (o Infix[L, R, Res]) Apply(left AsExpression[L], right AsExpression[R]) Expression[Res] {
	return node[Res]{expr: sqldsl.Infix{Left: left.AsExpression(), Op: o.Token, Right: right.AsExpression()}}
}

// Signature reports the declaration.
func (o Infix[L, R, Res]) Signature() OperatorSignature {
	left := InfoOf[L]()
	return OperatorSignature{Name: o.Name, Token: o.Token, Left: &left, Right: InfoOf[R](), Result: InfoOf[Res]()}
}

// Prefix declares a unary prefix operator.
type Prefix[A, Res SQLType] struct {
	Name  string
	Token string
}

// Apply builds (TOKEN operand).
func (o Prefix[A, Res]) Apply(operand AsExpression[A]) Expression[Res] {
	return node[Res]{expr: sqldsl.Prefix{Op: o.Token, Expr: operand.AsExpression()}}
}

// Signature reports the declaration.
func (o Prefix[A, Res]) Signature() OperatorSignature {
	return OperatorSignature{Name: o.Name, Token: o.Token, Right: InfoOf[A](), Result: InfoOf[Res]()}
}
