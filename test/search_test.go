package test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/pgfts"
	"github.com/pthm/pgfts/pkg/sqldsl"
	"github.com/pthm/pgfts/pkg/sqltype"
	"github.com/pthm/pgfts/test/testutil"
)

// selectOne binds expr as a one-column SELECT and scans the single value.
func selectOne(t *testing.T, pool *pgxpool.Pool, expr sqldsl.Expr, dest any) {
	t.Helper()
	sql, args := sqldsl.Bind(sqldsl.SelectStmt{Columns: []sqldsl.Expr{expr}})
	err := pool.QueryRow(context.Background(), sql, args...).Scan(dest)
	require.NoError(t, err, "query: %s", sql)
}

func TestMatchScenario_Executes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool := testutil.Pool(t)

	match := pgfts.ToTsVector(sqltype.String("the quick fox")).Matches(pgfts.ToTsQuery(sqltype.String("quick")))
	var matched bool
	selectOne(t, pool, match, &matched)
	assert.True(t, matched)

	miss := pgfts.ToTsVector(sqltype.String("the quick fox")).Matches(pgfts.ToTsQuery(sqltype.String("slow")))
	selectOne(t, pool, miss, &matched)
	assert.False(t, matched)

	// Inline rendering runs as well.
	err := pool.QueryRow(context.Background(), "SELECT "+sqldsl.SQL(match)).Scan(&matched)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestFunctions_Execute(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool := testutil.Pool(t)
	english := pgfts.Config("english")
	simple := pgfts.Config("simple")

	t.Run("strip", func(t *testing.T) {
		var out string
		selectOne(t, pool, pgfts.Strip(pgfts.ToTsVectorWith(simple, sqltype.String("a b c"))), &out)
		assert.Equal(t, "'a' 'b' 'c'", out)
	})

	t.Run("length", func(t *testing.T) {
		var n int32
		selectOne(t, pool, pgfts.ToTsVectorWith(english, sqltype.String("fat cats ate fat rats")).Length(), &n)
		assert.Equal(t, int32(4), n)
	})

	t.Run("numnode", func(t *testing.T) {
		var n int32
		selectOne(t, pool, pgfts.NumNode(pgfts.ToTsQueryWith(simple, sqltype.String("(fat & rat) | cat"))), &n)
		assert.Equal(t, int32(5), n)
	})

	t.Run("querytree", func(t *testing.T) {
		var out string
		selectOne(t, pool, pgfts.ToTsQueryWith(simple, sqltype.String("!defined")).QueryTree(), &out)
		assert.Equal(t, "T", out)
	})

	t.Run("headline", func(t *testing.T) {
		var out string
		q := pgfts.ToTsQueryWith(english, sqltype.String("fox"))
		selectOne(t, pool, q.Headline(sqltype.String("the quick brown fox")), &out)
		assert.Contains(t, out, "<b>fox</b>")
	})

	t.Run("plainto_tsquery", func(t *testing.T) {
		var out string
		selectOne(t, pool, pgfts.PlainToTsQueryWith(english, sqltype.String("The Fat Rats")), &out)
		assert.Equal(t, "'fat' & 'rat'", out)
	})

	t.Run("phraseto_tsquery", func(t *testing.T) {
		var out string
		selectOne(t, pool, pgfts.PhraseToTsQueryWith(english, sqltype.String("fat rats")), &out)
		assert.Equal(t, "'fat' <-> 'rat'", out)
	})

	t.Run("websearch_to_tsquery", func(t *testing.T) {
		var out string
		selectOne(t, pool, pgfts.WebsearchToTsQueryWith(english, sqltype.String(`"fat rat" or cat -dog`)), &out)
		assert.Contains(t, out, "'fat' <-> 'rat'")
		assert.Contains(t, out, "!'dog'")
	})

	t.Run("rank", func(t *testing.T) {
		var score float32
		v := pgfts.ToTsVectorWith(english, sqltype.String("a fat cat sat on a mat"))
		selectOne(t, pool, v.Rank(pgfts.ToTsQueryWith(english, sqltype.String("cat"))), &score)
		assert.Greater(t, score, float32(0))

		selectOne(t, pool, v.RankCD(pgfts.ToTsQueryWith(english, sqltype.String("dog"))), &score)
		assert.Equal(t, float32(0), score)
	})
}

func TestOperators_Execute(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool := testutil.Pool(t)
	simple := pgfts.Config("simple")
	cat := pgfts.ToTsQueryWith(simple, sqltype.String("cat"))
	catAndRat := pgfts.ToTsQueryWith(simple, sqltype.String("cat & rat"))

	t.Run("and", func(t *testing.T) {
		var out string
		selectOne(t, pool, cat.And(pgfts.ToTsQueryWith(simple, sqltype.String("rat"))), &out)
		assert.Equal(t, "'cat' & 'rat'", out)
	})

	t.Run("or", func(t *testing.T) {
		var out string
		selectOne(t, pool, cat.Or(pgfts.ToTsQueryWith(simple, sqltype.String("rat"))), &out)
		assert.Equal(t, "'cat' | 'rat'", out)
	})

	t.Run("not", func(t *testing.T) {
		var out string
		selectOne(t, pool, cat.Not(), &out)
		assert.Equal(t, "!'cat'", out)
	})

	t.Run("followed by", func(t *testing.T) {
		var out string
		selectOne(t, pool, cat.FollowedBy(pgfts.ToTsQueryWith(simple, sqltype.String("rat"))), &out)
		assert.Equal(t, "'cat' <-> 'rat'", out)
	})

	t.Run("concat", func(t *testing.T) {
		var out string
		a := pgfts.ToTsVectorWith(simple, sqltype.String("fat cat"))
		b := pgfts.ToTsVectorWith(simple, sqltype.String("rat"))
		selectOne(t, pool, a.Concat(b), &out)
		assert.Equal(t, "'cat':2 'fat':1 'rat':3", out)
	})

	t.Run("contains and contained by", func(t *testing.T) {
		var got bool
		selectOne(t, pool, catAndRat.Contains(cat), &got)
		assert.True(t, got, "'cat & rat' @> 'cat'")

		selectOne(t, pool, cat.ContainedBy(catAndRat), &got)
		assert.True(t, got, "'cat' <@ 'cat & rat'")

		selectOne(t, pool, cat.Contains(catAndRat), &got)
		assert.False(t, got, "'cat' @> 'cat & rat'")
	})

	t.Run("query matches vector", func(t *testing.T) {
		var got bool
		selectOne(t, pool, cat.Matches(pgfts.ToTsVectorWith(simple, sqltype.String("the cat"))), &got)
		assert.True(t, got)
	})
}

func TestSearchStatement_RanksDocuments(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool := testutil.Pool(t)
	ctx := context.Background()

	vector := pgfts.Vector(sqltype.Col[pgfts.TsVector]("d", "search_vector"))
	query := pgfts.WebsearchToTsQueryWith(pgfts.Config("english"), sqltype.String("quick rat"))

	stmt := sqldsl.SelectStmt{
		Columns: []sqldsl.Expr{
			sqldsl.Col{Table: "d", Column: "title"},
			sqldsl.SelectAs(vector.Rank(query), "rank"),
		},
		From:    sqldsl.TableAs("documents", "d"),
		Where:   vector.Matches(query),
		OrderBy: []sqldsl.OrderBy{{Expr: sqldsl.Raw("rank"), Desc: true}},
		Limit:   10,
	}

	sql, args := sqldsl.Bind(stmt)
	rows, err := pool.Query(ctx, sql, args...)
	require.NoError(t, err)
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		var rank float32
		require.NoError(t, rows.Scan(&title, &rank))
		assert.Greater(t, rank, float32(0))
		titles = append(titles, title)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"Rats"}, titles)
}

func TestTextSearchValues_ScanThroughRegisteredTypes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool := testutil.Pool(t)
	ctx := context.Background()

	var vectors []string
	err := pool.QueryRow(ctx,
		`SELECT array_agg(search_vector ORDER BY id) FROM documents WHERE id <= 2`,
	).Scan(&vectors)
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.Contains(t, vectors[0], "'fox':")

	// A tsquery parameter encodes from its text form.
	var matched int
	err = pool.QueryRow(ctx,
		`SELECT count(*) FROM documents WHERE search_vector @@ $1::tsquery`,
		"cat & rat",
	).Scan(&matched)
	require.NoError(t, err)
	assert.Equal(t, 2, matched)
}

func TestAfterConnect_RegistersTypesOnPoolConnections(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool := testutil.Pool(t)
	conn, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	defer conn.Release()

	m := conn.Conn().TypeMap()
	for _, info := range pgfts.Types() {
		typ, ok := m.TypeForOID(info.OID)
		require.True(t, ok, "%s not registered", info.Name)
		assert.Equal(t, info.Name, typ.Name)

		arr, ok := m.TypeForOID(info.ArrayOID)
		require.True(t, ok, "%s array not registered", info.Name)
		assert.Equal(t, "_"+info.Name, arr.Name)
	}
}

func TestMapError_AgainstServer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool := testutil.Pool(t)
	ctx := context.Background()

	expr := pgfts.ToTsVectorWith(pgfts.Config("klingon"), sqltype.String("qapla"))
	sql, args := sqldsl.Bind(sqldsl.SelectStmt{Columns: []sqldsl.Expr{expr}})

	var out string
	err := pgfts.MapError("render", pool.QueryRow(ctx, sql, args...).Scan(&out))
	require.Error(t, err)
	assert.True(t, pgfts.IsMissingConfigErr(err), "got %v", err)

	// A hand-written query with an undeclared signature.
	_, err = pool.Exec(ctx, `SELECT ts_rank(1, 'a'::tsquery)`)
	err = pgfts.MapError("rank", err)
	assert.True(t, pgfts.IsMissingFunctionErr(err), "got %v", err)
}
