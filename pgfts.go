// Package pgfts provides typed PostgreSQL full-text-search expressions.
//
// # Overview
//
// PostgreSQL stores searchable documents as tsvector and parsed queries as
// tsquery. This package declares both as Go marker types and exposes the
// text search functions and operators as constructors over typed expressions,
// so a query that compares a tsvector with an integer, or passes a tsquery
// where a tsvector is expected, fails to compile instead of failing in the
// database.
//
// # Basic Usage
//
//	doc := pgfts.ToTsVector(sqltype.String("the quick fox"))
//	query := pgfts.ToTsQuery(sqltype.String("quick"))
//
//	match := doc.Matches(query)
//	sql, args := sqldsl.Bind(match)
//	// sql:  (to_tsvector($1) @@ to_tsquery($2))
//	// args: ["the quick fox", "quick"]
//
// Catalog functions that return tsvector or tsquery return VectorExpr or
// QueryExpr, which carry the operators as methods. Any other expression of the
// right type (a column, a Wrap'd fragment) gains the same methods through
// Vector and Query:
//
//	body := pgfts.Vector(sqltype.Col[pgfts.TsVector]("d", "search_vector"))
//	rank := body.Rank(query)
//
// # Type Registry
//
// TsVector, TsQuery and RegConfig report their pg_type OIDs through Metadata.
// RegisterTypes installs them in a pgx type map so parameters and results of
// these types use the text wire format:
//
//	cfg.AfterConnect = pgfts.AfterConnect // *pgxpool.Config
//
// # Catalogs
//
// Types, Functions and Operators list every declaration. The pgfts doctor
// command compares them with pg_type, pg_proc and pg_operator of a live
// database.
package pgfts
