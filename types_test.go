package pgfts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pthm/pgfts"
	"github.com/pthm/pgfts/pkg/sqldsl"
	"github.com/pthm/pgfts/pkg/sqltype"
)

func TestTypeMetadata(t *testing.T) {
	tests := []struct {
		name string
		got  sqltype.TypeMetadata
		want sqltype.TypeMetadata
	}{
		{"tsvector", pgfts.TsVector{}.Metadata(), sqltype.TypeMetadata{OID: 3614, ArrayOID: 3643}},
		{"tsvector generic", sqltype.MetadataOf[pgfts.TsVector](), sqltype.TypeMetadata{OID: 3614, ArrayOID: 3643}},
		{"tsquery", pgfts.TsQuery{}.Metadata(), sqltype.TypeMetadata{OID: 3615, ArrayOID: 3645}},
		{"tsquery generic", sqltype.MetadataOf[pgfts.TsQuery](), sqltype.TypeMetadata{OID: 3615, ArrayOID: 3645}},
		{"regconfig", pgfts.RegConfig{}.Metadata(), sqltype.TypeMetadata{OID: 3734, ArrayOID: 3735}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestTypes(t *testing.T) {
	types := pgfts.Types()

	names := make([]string, len(types))
	for i, ti := range types {
		names[i] = ti.Name
	}
	assert.Equal(t, []string{"tsvector", "tsquery", "regconfig"}, names)

	// Every call site sees the same constants.
	for range 3 {
		assert.Equal(t, uint32(3614), pgfts.Types()[0].OID)
		assert.Equal(t, uint32(3645), pgfts.Types()[1].ArrayOID)
	}
}

func TestConfig(t *testing.T) {
	cfg := pgfts.Config("english")
	assert.Equal(t, "'english'::regconfig", sqldsl.SQL(cfg))

	sql, args := sqldsl.Bind(cfg)
	assert.Equal(t, "$1::regconfig", sql)
	assert.Equal(t, []any{"english"}, args)
}
