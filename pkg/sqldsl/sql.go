package sqldsl

import "strconv"

// TableExpr is the interface for table expressions in FROM clauses.
type TableExpr interface {
	// TableSQL returns the SQL for use in FROM clauses.
	TableSQL() string
}

// TableRef wraps a table name for use as a TableExpr.
type TableRef struct {
	Name  string
	Alias string
}

// TableSQL implements TableExpr.
func (t TableRef) TableSQL() string {
	if t.Alias != "" {
		return t.Name + " AS " + t.Alias
	}
	return t.Name
}

// TableAs creates a table reference with an alias.
func TableAs(name, alias string) TableRef {
	return TableRef{Name: name, Alias: alias}
}

// OrderBy is a single ORDER BY term.
type OrderBy struct {
	Expr Expr
	Desc bool
}

// WriteSQL renders the ordering term.
func (o OrderBy) WriteSQL(w *Writer) {
	o.Expr.WriteSQL(w)
	if o.Desc {
		w.WriteString(" DESC")
	}
}

// SelectStmt represents a SELECT query.
type SelectStmt struct {
	Distinct bool
	Columns  []Expr
	From     TableExpr
	Where    Expr
	OrderBy  []OrderBy
	Limit    int
	Offset   int
}

// WriteSQL renders the SELECT statement, one clause per line.
// Empty clauses are omitted; no columns selects 1.
func (s SelectStmt) WriteSQL(w *Writer) {
	w.WriteString("SELECT ")
	if s.Distinct {
		w.WriteString("DISTINCT ")
	}
	if len(s.Columns) == 0 {
		w.WriteString("1")
	} else {
		w.WriteList(s.Columns, ", ")
	}
	if s.From != nil {
		w.WriteString("\nFROM " + s.From.TableSQL())
	}
	if s.Where != nil {
		w.WriteString("\nWHERE ")
		s.Where.WriteSQL(w)
	}
	if len(s.OrderBy) > 0 {
		w.WriteString("\nORDER BY ")
		for i, o := range s.OrderBy {
			if i > 0 {
				w.WriteString(", ")
			}
			o.WriteSQL(w)
		}
	}
	if s.Limit > 0 {
		w.WriteString("\nLIMIT " + strconv.Itoa(s.Limit))
	}
	if s.Offset > 0 {
		w.WriteString("\nOFFSET " + strconv.Itoa(s.Offset))
	}
}

// Exists represents an EXISTS subquery.
type Exists struct {
	Query SelectStmt
}

// WriteSQL renders EXISTS (query).
func (e Exists) WriteSQL(w *Writer) {
	w.WriteString("EXISTS (\n")
	e.Query.WriteSQL(w)
	w.WriteString("\n)")
}
