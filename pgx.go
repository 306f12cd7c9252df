package pgfts

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pthm/pgfts/pkg/sqltype"
)

// RegisterTypes registers tsvector, tsquery and regconfig, and their array
// types, with m under the registry OIDs. Values travel in PostgreSQL's text
// format and scan into string and []string.
func RegisterTypes(m *pgtype.Map) {
	for _, t := range []sqltype.SQLType{TsVector{}, TsQuery{}, RegConfig{}} {
		info := sqltype.Info(t)
		elem := &pgtype.Type{Name: info.Name, OID: info.OID, Codec: pgtype.TextCodec{}}
		m.RegisterType(elem)
		m.RegisterType(&pgtype.Type{
			Name:  "_" + info.Name,
			OID:   info.ArrayOID,
			Codec: &pgtype.ArrayCodec{ElementType: elem},
		})
	}
}

// AfterConnect registers the text search types on a new connection. Its
// signature matches pgxpool.Config.AfterConnect.
func AfterConnect(_ context.Context, conn *pgx.Conn) error {
	RegisterTypes(conn.TypeMap())
	return nil
}
