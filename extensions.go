package pgfts

import "github.com/pthm/pgfts/pkg/sqltype"

// VectorExpr is a tsvector expression with the text search operators as methods.
type VectorExpr struct {
	sqltype.Expression[TsVector]
}

// Vector attaches the tsvector methods to e.
func Vector(e sqltype.AsExpression[TsVector]) VectorExpr {
	if v, ok := e.(VectorExpr); ok {
		return v
	}
	return VectorExpr{Expression: e.AsExpression()}
}

// Matches builds (v @@ q).
func (v VectorExpr) Matches(q sqltype.AsExpression[TsQuery]) sqltype.Expression[sqltype.Bool] {
	return Matches(v, q)
}

// Concat builds (v || other).
func (v VectorExpr) Concat(other sqltype.AsExpression[TsVector]) VectorExpr {
	return Concat(v, other)
}

// Length builds length(v).
func (v VectorExpr) Length() sqltype.Expression[sqltype.Integer] {
	return Length(v)
}

// Strip builds strip(v).
func (v VectorExpr) Strip() VectorExpr {
	return Strip(v)
}

// Rank builds ts_rank(v, q).
func (v VectorExpr) Rank(q sqltype.AsExpression[TsQuery]) sqltype.Expression[sqltype.Float] {
	return TsRank(v, q)
}

// RankCD builds ts_rank_cd(v, q).
func (v VectorExpr) RankCD(q sqltype.AsExpression[TsQuery]) sqltype.Expression[sqltype.Float] {
	return TsRankCD(v, q)
}

// QueryExpr is a tsquery expression with the text search operators as methods.
type QueryExpr struct {
	sqltype.Expression[TsQuery]
}

// Query attaches the tsquery methods to e.
func Query(e sqltype.AsExpression[TsQuery]) QueryExpr {
	if q, ok := e.(QueryExpr); ok {
		return q
	}
	return QueryExpr{Expression: e.AsExpression()}
}

// Matches builds (q @@ v).
func (q QueryExpr) Matches(v sqltype.AsExpression[TsVector]) sqltype.Expression[sqltype.Bool] {
	return MatchesQuery(q, v)
}

// And builds (q && other).
func (q QueryExpr) And(other sqltype.AsExpression[TsQuery]) QueryExpr {
	return And(q, other)
}

// Or builds (q || other).
func (q QueryExpr) Or(other sqltype.AsExpression[TsQuery]) QueryExpr {
	return Or(q, other)
}

// Contains builds (q @> other).
func (q QueryExpr) Contains(other sqltype.AsExpression[TsQuery]) sqltype.Expression[sqltype.Bool] {
	return Contains(q, other)
}

// ContainedBy builds (q <@ other).
func (q QueryExpr) ContainedBy(other sqltype.AsExpression[TsQuery]) sqltype.Expression[sqltype.Bool] {
	return ContainedBy(q, other)
}

// FollowedBy builds (q <-> other).
func (q QueryExpr) FollowedBy(other sqltype.AsExpression[TsQuery]) QueryExpr {
	return FollowedBy(q, other)
}

// Not builds (!! q).
func (q QueryExpr) Not() QueryExpr {
	return Not(q)
}

// NumNode builds numnode(q).
func (q QueryExpr) NumNode() sqltype.Expression[sqltype.Integer] {
	return NumNode(q)
}

// QueryTree builds querytree(q).
func (q QueryExpr) QueryTree() sqltype.Expression[sqltype.Text] {
	return QueryTree(q)
}

// Headline builds ts_headline(document, q).
func (q QueryExpr) Headline(document sqltype.AsExpression[sqltype.Text]) sqltype.Expression[sqltype.Text] {
	return TsHeadline(document, q)
}

var (
	_ sqltype.Expression[TsVector] = VectorExpr{}
	_ sqltype.Expression[TsQuery]  = QueryExpr{}
)
