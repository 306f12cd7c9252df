// Package sqltype attaches PostgreSQL types to sqldsl expressions at compile time.
//
// # Overview
//
// Every SQL type is a Go marker type: an empty struct implementing SQLType. The
// marker carries no data; its zero value reports the type's catalog name and OIDs.
// An Expression[T] is a sqldsl.Expr tagged with the marker T. Because the tag appears
// in the method set (SQLType() T), Expression[Text] and Expression[Integer] are
// different interface types and cannot be passed for one another:
//
//	var n sqltype.Expression[sqltype.Integer] = sqltype.String("x") // does not compile
//
// # Conversion
//
// AsExpression[T] is the conversion capability. Typed expressions, typed columns and
// the value types (String, Int, Real, Boolean) all implement it, so constructors can
// accept any of them:
//
//	upper := sqltype.Func1[sqltype.Text, sqltype.Text]{Name: "upper"}
//	upper.Call(sqltype.String("abc"))                     // upper('abc')
//	upper.Call(sqltype.Col[sqltype.Text]("d", "title"))   // upper(d.title)
//
// # Descriptors
//
// Func1, Func2, Infix and Prefix describe a SQL function or operator once, with its
// parameter and result types. Call/Apply build typed nodes; Signature reports the
// declaration so it can be listed or compared with pg_catalog.
package sqltype
