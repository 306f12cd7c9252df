package pgfts

import "github.com/pthm/pgfts/pkg/sqltype"

type (
	text    = sqltype.Text
	integer = sqltype.Integer
	float   = sqltype.Float
)

// Function declarations. Argument and result types follow pg_proc.
var (
	lengthFn         = sqltype.Func1[TsVector, integer]{Name: "length"}
	numNodeFn        = sqltype.Func1[TsQuery, integer]{Name: "numnode"}
	plainToTsQueryFn = sqltype.Func1[text, TsQuery]{Name: "plainto_tsquery"}
	queryTreeFn      = sqltype.Func1[TsQuery, text]{Name: "querytree"}
	stripFn          = sqltype.Func1[TsVector, TsVector]{Name: "strip"}
	toTsQueryFn      = sqltype.Func1[text, TsQuery]{Name: "to_tsquery"}
	toTsVectorFn     = sqltype.Func1[text, TsVector]{Name: "to_tsvector"}
	tsHeadlineFn     = sqltype.Func2[text, TsQuery, text]{Name: "ts_headline"}
	tsRankFn         = sqltype.Func2[TsVector, TsQuery, float]{Name: "ts_rank"}
	tsRankCDFn       = sqltype.Func2[TsVector, TsQuery, float]{Name: "ts_rank_cd"}

	toTsVectorWithFn     = sqltype.Func2[RegConfig, text, TsVector]{Name: "to_tsvector"}
	toTsQueryWithFn      = sqltype.Func2[RegConfig, text, TsQuery]{Name: "to_tsquery"}
	plainToTsQueryWithFn = sqltype.Func2[RegConfig, text, TsQuery]{Name: "plainto_tsquery"}
	phraseToTsQueryFn    = sqltype.Func1[text, TsQuery]{Name: "phraseto_tsquery"}
	websearchToTsQueryFn = sqltype.Func1[text, TsQuery]{Name: "websearch_to_tsquery"}

	phraseToTsQueryWithFn    = sqltype.Func2[RegConfig, text, TsQuery]{Name: "phraseto_tsquery"}
	websearchToTsQueryWithFn = sqltype.Func2[RegConfig, text, TsQuery]{Name: "websearch_to_tsquery"}
)

// Length returns the number of lexemes in v: length(v).
func Length(v sqltype.AsExpression[TsVector]) sqltype.Expression[sqltype.Integer] {
	return lengthFn.Call(v)
}

// NumNode returns the number of lexemes plus operators in q: numnode(q).
func NumNode(q sqltype.AsExpression[TsQuery]) sqltype.Expression[sqltype.Integer] {
	return numNodeFn.Call(q)
}

// PlainToTsQuery parses unformatted text into a query: plainto_tsquery(s).
func PlainToTsQuery(s sqltype.AsExpression[sqltype.Text]) QueryExpr {
	return Query(plainToTsQueryFn.Call(s))
}

// QueryTree returns the indexable part of q: querytree(q).
func QueryTree(q sqltype.AsExpression[TsQuery]) sqltype.Expression[sqltype.Text] {
	return queryTreeFn.Call(q)
}

// Strip removes positions and weights from v: strip(v).
func Strip(v sqltype.AsExpression[TsVector]) VectorExpr {
	return Vector(stripFn.Call(v))
}

// ToTsQuery parses formatted query text: to_tsquery(s).
func ToTsQuery(s sqltype.AsExpression[sqltype.Text]) QueryExpr {
	return Query(toTsQueryFn.Call(s))
}

// ToTsVector normalizes a document: to_tsvector(s).
func ToTsVector(s sqltype.AsExpression[sqltype.Text]) VectorExpr {
	return Vector(toTsVectorFn.Call(s))
}

// TsHeadline highlights matches of q in document: ts_headline(document, q).
func TsHeadline(document sqltype.AsExpression[sqltype.Text], q sqltype.AsExpression[TsQuery]) sqltype.Expression[sqltype.Text] {
	return tsHeadlineFn.Call(document, q)
}

// TsRank ranks v against q by lexeme frequency: ts_rank(v, q).
func TsRank(v sqltype.AsExpression[TsVector], q sqltype.AsExpression[TsQuery]) sqltype.Expression[sqltype.Float] {
	return tsRankFn.Call(v, q)
}

// TsRankCD ranks v against q by cover density: ts_rank_cd(v, q).
func TsRankCD(v sqltype.AsExpression[TsVector], q sqltype.AsExpression[TsQuery]) sqltype.Expression[sqltype.Float] {
	return tsRankCDFn.Call(v, q)
}

// ToTsVectorWith normalizes a document using an explicit configuration:
// to_tsvector(cfg, s).
func ToTsVectorWith(cfg sqltype.AsExpression[RegConfig], s sqltype.AsExpression[sqltype.Text]) VectorExpr {
	return Vector(toTsVectorWithFn.Call(cfg, s))
}

// ToTsQueryWith parses formatted query text using an explicit configuration.
func ToTsQueryWith(cfg sqltype.AsExpression[RegConfig], s sqltype.AsExpression[sqltype.Text]) QueryExpr {
	return Query(toTsQueryWithFn.Call(cfg, s))
}

// PlainToTsQueryWith parses unformatted text using an explicit configuration.
func PlainToTsQueryWith(cfg sqltype.AsExpression[RegConfig], s sqltype.AsExpression[sqltype.Text]) QueryExpr {
	return Query(plainToTsQueryWithFn.Call(cfg, s))
}

// PhraseToTsQuery parses text into a phrase query (lexemes joined by <->).
func PhraseToTsQuery(s sqltype.AsExpression[sqltype.Text]) QueryExpr {
	return Query(phraseToTsQueryFn.Call(s))
}

// WebsearchToTsQuery parses web search syntax ("quoted phrases", or, -negation).
func WebsearchToTsQuery(s sqltype.AsExpression[sqltype.Text]) QueryExpr {
	return Query(websearchToTsQueryFn.Call(s))
}

// PhraseToTsQueryWith is PhraseToTsQuery with an explicit configuration.
func PhraseToTsQueryWith(cfg sqltype.AsExpression[RegConfig], s sqltype.AsExpression[sqltype.Text]) QueryExpr {
	return Query(phraseToTsQueryWithFn.Call(cfg, s))
}

// WebsearchToTsQueryWith is WebsearchToTsQuery with an explicit configuration.
func WebsearchToTsQueryWith(cfg sqltype.AsExpression[RegConfig], s sqltype.AsExpression[sqltype.Text]) QueryExpr {
	return Query(websearchToTsQueryWithFn.Call(cfg, s))
}

// Functions returns every declared function signature in declaration order.
func Functions() []sqltype.FunctionSignature {
	return []sqltype.FunctionSignature{
		lengthFn.Signature(),
		numNodeFn.Signature(),
		plainToTsQueryFn.Signature(),
		queryTreeFn.Signature(),
		stripFn.Signature(),
		toTsQueryFn.Signature(),
		toTsVectorFn.Signature(),
		tsHeadlineFn.Signature(),
		tsRankFn.Signature(),
		tsRankCDFn.Signature(),
		toTsVectorWithFn.Signature(),
		toTsQueryWithFn.Signature(),
		plainToTsQueryWithFn.Signature(),
		phraseToTsQueryFn.Signature(),
		websearchToTsQueryFn.Signature(),
		phraseToTsQueryWithFn.Signature(),
		websearchToTsQueryWithFn.Signature(),
	}
}
