package sqltype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/pgfts/pkg/sqldsl"
)

func TestBuiltinMetadata(t *testing.T) {
	tests := []struct {
		name     string
		info     TypeInfo
		oid      uint32
		arrayOID uint32
	}{
		{"text", InfoOf[Text](), 25, 1009},
		{"int4", InfoOf[Integer](), 23, 1007},
		{"float4", InfoOf[Float](), 700, 1021},
		{"bool", InfoOf[Bool](), 16, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.info.Name)
			assert.Equal(t, tt.oid, tt.info.OID)
			assert.Equal(t, tt.arrayOID, tt.info.ArrayOID)
		})
	}

	assert.Equal(t, TypeMetadata{OID: 25, ArrayOID: 1009}, MetadataOf[Text]())
	assert.Equal(t, "float4", NameOf[Float]())
	assert.Len(t, Builtins(), 4)
}

func TestValues_SQL(t *testing.T) {
	assert.Equal(t, "'quick'", sqldsl.SQL(String("quick")))
	assert.Equal(t, "42", sqldsl.SQL(Int(42)))
	assert.Equal(t, "0.25", sqldsl.SQL(Real(0.25)))
	assert.Equal(t, "TRUE", sqldsl.SQL(Boolean(true)))
}

func TestValues_Bind(t *testing.T) {
	sql, args := sqldsl.Bind(sqldsl.Func{Name: "f", Args: []sqldsl.Expr{String("a"), Int(7), Real(1.5), Boolean(false)}})
	assert.Equal(t, "f($1, $2, $3, $4)", sql)
	assert.Equal(t, []any{"a", int32(7), float32(1.5), false}, args)
}

func TestFunc1(t *testing.T) {
	upper := Func1[Text, Text]{Name: "upper"}

	var got Expression[Text] = upper.Call(String("abc"))
	assert.Equal(t, "upper('abc')", sqldsl.SQL(got))
	assert.Equal(t, Text{}, got.SQLType())

	got = upper.Call(Col[Text]("d", "title"))
	assert.Equal(t, "upper(d.title)", sqldsl.SQL(got))

	sig := upper.Signature()
	assert.Equal(t, "upper", sig.Name)
	require.Len(t, sig.Params, 1)
	assert.Equal(t, uint32(25), sig.Params[0].OID)
	assert.Equal(t, "upper(text) -> text", sig.String())
}

func TestFunc2_ArgumentOrder(t *testing.T) {
	repeat := Func2[Text, Integer, Text]{Name: "repeat"}
	got := repeat.Call(String("ab"), Int(3))

	assert.Equal(t, "repeat('ab', 3)", sqldsl.SQL(got))
	assert.Equal(t, "repeat(text, int4) -> text", repeat.Signature().String())
}

func TestInfix(t *testing.T) {
	gt := Infix[Integer, Integer, Bool]{Name: "GreaterThan", Token: ">"}
	got := gt.Apply(Col[Integer]("", "n"), Int(1))

	assert.Equal(t, "(n > 1)", sqldsl.SQL(got))

	sig := gt.Signature()
	assert.False(t, sig.Prefix())
	require.NotNil(t, sig.Left)
	assert.Equal(t, "int4", sig.Left.Name)
	assert.Equal(t, "(int4 > int4) -> bool", sig.String())
}

func TestPrefix(t *testing.T) {
	neg := Prefix[Integer, Integer]{Name: "Negate", Token: "-"}
	assert.Equal(t, "(- 5)", sqldsl.SQL(neg.Apply(Int(5))))

	sig := neg.Signature()
	assert.True(t, sig.Prefix())
	assert.Equal(t, "(- int4) -> int4", sig.String())
}

func TestWrapAndCast(t *testing.T) {
	raw := Wrap[Text](sqldsl.Raw("current_user"))
	assert.Equal(t, "current_user", sqldsl.SQL(raw))

	// Wrapping an already typed expression returns it unchanged.
	col := Col[Text]("d", "title")
	assert.Equal(t, Expression[Text](col), Wrap[Text](col))

	assert.Equal(t, "'7'::int4", sqldsl.SQL(Cast[Integer](sqldsl.Lit("7"))))
	assert.Equal(t, "NULL::text", sqldsl.SQL(Null[Text]()))
}

func TestPredicate(t *testing.T) {
	eq := Infix[Text, Text, Bool]{Name: "Equals", Token: "="}
	where := sqldsl.And(Predicate(eq.Apply(Col[Text]("", "lang"), String("en"))), sqldsl.Raw("TRUE"))

	assert.Equal(t, "((lang = 'en') AND TRUE)", sqldsl.SQL(where))
}

// Mismatched operand types are rejected by the compiler rather than at run
// time. These assignments only document which conversions exist; the commented
// lines do not compile.
var (
	_ AsExpression[Text]    = String("")
	_ AsExpression[Integer] = Int(0)
	_ AsExpression[Float]   = Real(0)
	_ AsExpression[Bool]    = Boolean(false)

	// _ AsExpression[Integer] = String("")
	// _ Expression[Text] = Col[Integer]("", "n")
)
