package sqltype

import "strings"

// TypeMetadata holds the catalog identifiers PostgreSQL assigns to a type.
type TypeMetadata struct {
	OID      uint32 `json:"oid"`
	ArrayOID uint32 `json:"array_oid"`
}

// SQLType is implemented by marker types that stand for a PostgreSQL type.
// Implementations must be usable as their zero value.
type SQLType interface {
	// TypeName returns the type's pg_type.typname.
	TypeName() string
	// Metadata returns the type's OID and array OID.
	Metadata() TypeMetadata
}

// TypeInfo is a SQLType's catalog entry in plain data form.
type TypeInfo struct {
	Name     string `json:"name"`
	OID      uint32 `json:"oid"`
	ArrayOID uint32 `json:"array_oid"`
}

// String returns the type name.
func (t TypeInfo) String() string {
	return t.Name
}

// InfoOf returns the catalog entry for T.
func InfoOf[T SQLType]() TypeInfo {
	var t T
	return Info(t)
}

// Info returns the catalog entry for t.
func Info(t SQLType) TypeInfo {
	md := t.Metadata()
	return TypeInfo{Name: t.TypeName(), OID: md.OID, ArrayOID: md.ArrayOID}
}

// MetadataOf returns T's OIDs.
func MetadataOf[T SQLType]() TypeMetadata {
	var t T
	return t.Metadata()
}

// NameOf returns T's pg_type name.
func NameOf[T SQLType]() string {
	var t T
	return t.TypeName()
}

// Built-in types used by function and operator signatures.
// OIDs are PostgreSQL's fixed catalog values (src/include/catalog/pg_type.dat).

// Text is PostgreSQL's text type.
type Text struct{}

// TypeName implements SQLType.
func (Text) TypeName() string { return "text" }

// Metadata implements SQLType.
func (Text) Metadata() TypeMetadata {
	return TypeMetadata{OID: 25, ArrayOID: 1009}
}

// Integer is PostgreSQL's int4.
type Integer struct{}

// TypeName implements SQLType.
func (Integer) TypeName() string { return "int4" }

// Metadata implements SQLType.
func (Integer) Metadata() TypeMetadata {
	return TypeMetadata{OID: 23, ArrayOID: 1007}
}

// Float is PostgreSQL's float4 (real), the result type of the ranking functions.
type Float struct{}

// TypeName implements SQLType.
func (Float) TypeName() string { return "float4" }

// Metadata implements SQLType.
func (Float) Metadata() TypeMetadata {
	return TypeMetadata{OID: 700, ArrayOID: 1021}
}

// Bool is PostgreSQL's boolean.
type Bool struct{}

// TypeName implements SQLType.
func (Bool) TypeName() string { return "bool" }

// Metadata implements SQLType.
func (Bool) Metadata() TypeMetadata {
	return TypeMetadata{OID: 16, ArrayOID: 1000}
}

// Builtins returns the built-in marker types.
func Builtins() []SQLType {
	return []SQLType{Text{}, Integer{}, Float{}, Bool{}}
}

// describe formats a type list for signatures: (a, b).
func describe(types []TypeInfo) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name
	}
	return "(" + strings.Join(names, ", ") + ")"
}
