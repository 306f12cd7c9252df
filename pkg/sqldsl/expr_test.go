package sqldsl

import (
	"reflect"
	"testing"
)

func TestExpr_SQL(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{
			name: "column with table",
			expr: Col{Table: "d", Column: "body"},
			want: "d.body",
		},
		{
			name: "bare column",
			expr: Col{Column: "body"},
			want: "body",
		},
		{
			name: "text literal",
			expr: Lit("quick fox"),
			want: "'quick fox'",
		},
		{
			name: "text literal with quote",
			expr: Lit("it's"),
			want: "'it''s'",
		},
		{
			name: "function call preserves argument order",
			expr: Func{Name: "ts_headline", Args: []Expr{Col{Column: "body"}, Lit("q")}},
			want: "ts_headline(body, 'q')",
		},
		{
			name: "function without arguments",
			expr: Func{Name: "now"},
			want: "now()",
		},
		{
			name: "nested function calls",
			expr: Func{Name: "strip", Args: []Expr{Func{Name: "to_tsvector", Args: []Expr{Lit("a b c")}}}},
			want: "strip(to_tsvector('a b c'))",
		},
		{
			name: "infix is parenthesized",
			expr: Infix{Left: Raw("a"), Op: "&&", Right: Raw("b")},
			want: "(a && b)",
		},
		{
			name: "prefix operator",
			expr: Prefix{Op: "!!", Expr: Raw("q")},
			want: "(!! q)",
		},
		{
			name: "cast",
			expr: Cast{Expr: Lit("english"), Type: "regconfig"},
			want: "'english'::regconfig",
		},
		{
			name: "alias",
			expr: SelectAs(Col{Column: "x"}, "rank"),
			want: "x AS rank",
		},
		{
			name: "arg integer inlined",
			expr: Arg{Value: int64(42)},
			want: "42",
		},
		{
			name: "arg float inlined",
			expr: Arg{Value: float32(0.5)},
			want: "0.5",
		},
		{
			name: "arg nil inlined",
			expr: Arg{Value: nil},
			want: "NULL",
		},
		{
			name: "constants",
			expr: And(Bool(true), Eq{Left: Int(1), Right: Int(1)}),
			want: "(TRUE AND 1 = 1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SQL(tt.expr); got != tt.want {
				t.Errorf("SQL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBind(t *testing.T) {
	expr := Infix{
		Left:  Func{Name: "to_tsvector", Args: []Expr{Lit("the quick fox")}},
		Op:    "@@",
		Right: Func{Name: "to_tsquery", Args: []Expr{Lit("quick")}},
	}

	sql, args := Bind(expr)
	if want := "(to_tsvector($1) @@ to_tsquery($2))"; sql != want {
		t.Errorf("Bind() sql = %q, want %q", sql, want)
	}
	if want := []any{"the quick fox", "quick"}; !reflect.DeepEqual(args, want) {
		t.Errorf("Bind() args = %v, want %v", args, want)
	}
}

func TestBindFrom_Offset(t *testing.T) {
	sql, args := BindFrom(Eq{Left: Col{Column: "lang"}, Right: Lit("en")}, 3)
	if want := "lang = $4"; sql != want {
		t.Errorf("BindFrom() sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "en" {
		t.Errorf("BindFrom() args = %v, want [en]", args)
	}
}

func TestBind_ConstantsAreNotBound(t *testing.T) {
	sql, args := Bind(Func{Name: "f", Args: []Expr{Int(1), Bool(false), Null{}, Raw("x")}})
	if want := "f(1, FALSE, NULL, x)"; sql != want {
		t.Errorf("Bind() sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("Bind() args = %v, want none", args)
	}
}

func TestLogicalOperators(t *testing.T) {
	a := Raw("a")
	b := Raw("b")

	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"and empty", And(), "TRUE"},
		{"and drops nil", And(a, nil), "a"},
		{"and two", And(a, b), "(a AND b)"},
		{"or empty", Or(), "FALSE"},
		{"or two", Or(a, b), "(a OR b)"},
		{"not", Not(a), "NOT (a)"},
		{"is null", IsNull{Expr: a}, "a IS NULL"},
		{"is not null", IsNotNull{Expr: a}, "a IS NOT NULL"},
		{"ne", Ne{Left: a, Right: b}, "a <> b"},
		{"gte", Gte{Left: a, Right: b}, "a >= b"},
		{"lt", Lt{Left: a, Right: b}, "a < b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SQL(tt.expr); got != tt.want {
				t.Errorf("SQL() = %q, want %q", got, tt.want)
			}
		})
	}
}
