package pgfts

import (
	"github.com/pthm/pgfts/pkg/sqldsl"
	"github.com/pthm/pgfts/pkg/sqltype"
)

// TsVector is PostgreSQL's tsvector: a sorted list of normalized lexemes.
type TsVector struct{}

// TypeName implements sqltype.SQLType.
func (TsVector) TypeName() string { return "tsvector" }

// Metadata implements sqltype.SQLType.
func (TsVector) Metadata() sqltype.TypeMetadata {
	return sqltype.TypeMetadata{OID: 3614, ArrayOID: 3643}
}

// TsQuery is PostgreSQL's tsquery: lexemes combined with boolean and phrase operators.
type TsQuery struct{}

// TypeName implements sqltype.SQLType.
func (TsQuery) TypeName() string { return "tsquery" }

// Metadata implements sqltype.SQLType.
func (TsQuery) Metadata() sqltype.TypeMetadata {
	return sqltype.TypeMetadata{OID: 3615, ArrayOID: 3645}
}

// RegConfig is PostgreSQL's regconfig, a reference to a text search configuration.
type RegConfig struct{}

// TypeName implements sqltype.SQLType.
func (RegConfig) TypeName() string { return "regconfig" }

// Metadata implements sqltype.SQLType.
func (RegConfig) Metadata() sqltype.TypeMetadata {
	return sqltype.TypeMetadata{OID: 3734, ArrayOID: 3735}
}

// Config references a text search configuration by name, e.g. 'english'::regconfig.
// The name is a bound value; PostgreSQL resolves it when the cast is evaluated.
func Config(name string) sqltype.Expression[RegConfig] {
	return sqltype.Cast[RegConfig](sqldsl.Lit(name))
}

// Types returns the catalog entries of the text search types.
func Types() []sqltype.TypeInfo {
	return []sqltype.TypeInfo{
		sqltype.InfoOf[TsVector](),
		sqltype.InfoOf[TsQuery](),
		sqltype.InfoOf[RegConfig](),
	}
}

var (
	_ sqltype.SQLType = TsVector{}
	_ sqltype.SQLType = TsQuery{}
	_ sqltype.SQLType = RegConfig{}
)
