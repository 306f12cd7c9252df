package pgfts

import "github.com/pthm/pgfts/pkg/sqltype"

type boolean = sqltype.Bool

// Operator declarations. Operand and result types follow pg_operator.
var (
	matchesVQ     = sqltype.Infix[TsVector, TsQuery, boolean]{Name: "Matches", Token: "@@"}
	matchesQV     = sqltype.Infix[TsQuery, TsVector, boolean]{Name: "Matches", Token: "@@"}
	concatOp      = sqltype.Infix[TsVector, TsVector, TsVector]{Name: "Concat", Token: "||"}
	andOp         = sqltype.Infix[TsQuery, TsQuery, TsQuery]{Name: "And", Token: "&&"}
	orOp          = sqltype.Infix[TsQuery, TsQuery, TsQuery]{Name: "Or", Token: "||"}
	containsOp    = sqltype.Infix[TsQuery, TsQuery, boolean]{Name: "Contains", Token: "@>"}
	containedByOp = sqltype.Infix[TsQuery, TsQuery, boolean]{Name: "ContainedBy", Token: "<@"}
	followedByOp  = sqltype.Infix[TsQuery, TsQuery, TsQuery]{Name: "FollowedBy", Token: "<->"}
	notOp         = sqltype.Prefix[TsQuery, TsQuery]{Name: "Not", Token: "!!"}
)

// Matches builds the match predicate (v @@ q).
func Matches(v sqltype.AsExpression[TsVector], q sqltype.AsExpression[TsQuery]) sqltype.Expression[sqltype.Bool] {
	return matchesVQ.Apply(v, q)
}

// MatchesQuery builds the match predicate with the query first: (q @@ v).
func MatchesQuery(q sqltype.AsExpression[TsQuery], v sqltype.AsExpression[TsVector]) sqltype.Expression[sqltype.Bool] {
	return matchesQV.Apply(q, v)
}

// Concat merges two vectors: (left || right).
func Concat(left, right sqltype.AsExpression[TsVector]) VectorExpr {
	return Vector(concatOp.Apply(left, right))
}

// And requires both queries to match: (left && right).
func And(left, right sqltype.AsExpression[TsQuery]) QueryExpr {
	return Query(andOp.Apply(left, right))
}

// Or requires either query to match: (left || right).
func Or(left, right sqltype.AsExpression[TsQuery]) QueryExpr {
	return Query(orOp.Apply(left, right))
}

// Contains reports whether left contains every lexeme of right: (left @> right).
func Contains(left, right sqltype.AsExpression[TsQuery]) sqltype.Expression[sqltype.Bool] {
	return containsOp.Apply(left, right)
}

// ContainedBy reports whether every lexeme of left occurs in right: (left <@ right).
func ContainedBy(left, right sqltype.AsExpression[TsQuery]) sqltype.Expression[sqltype.Bool] {
	return containedByOp.Apply(left, right)
}

// FollowedBy requires right to match immediately after left: (left <-> right).
func FollowedBy(left, right sqltype.AsExpression[TsQuery]) QueryExpr {
	return Query(followedByOp.Apply(left, right))
}

// Not negates a query: (!! q).
func Not(q sqltype.AsExpression[TsQuery]) QueryExpr {
	return Query(notOp.Apply(q))
}

// Operators returns every declared operator signature.
func Operators() []sqltype.OperatorSignature {
	return []sqltype.OperatorSignature{
		matchesVQ.Signature(),
		matchesQV.Signature(),
		concatOp.Signature(),
		andOp.Signature(),
		orOp.Signature(),
		containsOp.Signature(),
		containedByOp.Signature(),
		followedByOp.Signature(),
		notOp.Signature(),
	}
}
