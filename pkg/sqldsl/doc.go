// Package sqldsl provides the untyped expression layer for building PostgreSQL queries.
//
// # Overview
//
// Rather than constructing SQL strings through concatenation, code composes small
// expression nodes that render themselves into a Writer. The same tree can be rendered
// two ways:
//
//   - SQL(expr) inlines values as quoted literals, for logging and tests.
//   - Bind(expr) replaces values with $1, $2, ... placeholders and returns the
//     arguments in placeholder order, ready for pgx or database/sql.
//
// # Expression Types
//
// Basic expressions:
//
//	Col{Table: "d", Column: "body"}   // Column reference: d.body
//	Lit("quick fox")                  // Text value: 'quick fox' or $n
//	Arg{Value: 42}                    // Any bindable value: 42 or $n
//	Int(10)                           // Integer constant: 10
//	Raw("CURRENT_TIMESTAMP")          // Raw SQL (escape hatch)
//
// Composite expressions:
//
//	Func{Name: "strip", Args: []Expr{v}}          // strip(v)
//	Infix{Left: v, Op: "@@", Right: q}            // (v @@ q)
//	Prefix{Op: "!!", Expr: q}                     // (!! q)
//	Cast{Expr: Lit("english"), Type: "regconfig"} // 'english'::regconfig
//	And(a, b), Or(a, b), Not(a)                   // logical combinators
//
// # Statements
//
//	SelectStmt{
//	    Columns: []Expr{Col{Column: "id"}},
//	    From:    TableAs("documents", "d"),
//	    Where:   predicate,
//	    OrderBy: []OrderBy{{Expr: rank, Desc: true}},
//	    Limit:   10,
//	}
//
// The package carries no SQL types. Typed expressions live in pkg/sqltype, which
// wraps these nodes and lets the compiler reject mismatched operands.
package sqldsl
