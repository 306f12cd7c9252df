package sqldsl

// Comparison operators

type comparison struct {
	op          string
	left, right Expr
}

func (c comparison) WriteSQL(w *Writer) {
	c.left.WriteSQL(w)
	w.WriteString(" " + c.op + " ")
	c.right.WriteSQL(w)
}

// Eq represents an equality comparison (=).
type Eq struct {
	Left  Expr
	Right Expr
}

func (e Eq) WriteSQL(w *Writer) { comparison{"=", e.Left, e.Right}.WriteSQL(w) }

// Ne represents a not-equal comparison (<>).
type Ne struct {
	Left  Expr
	Right Expr
}

func (n Ne) WriteSQL(w *Writer) { comparison{"<>", n.Left, n.Right}.WriteSQL(w) }

// Lt represents a less-than comparison (<).
type Lt struct {
	Left  Expr
	Right Expr
}

func (l Lt) WriteSQL(w *Writer) { comparison{"<", l.Left, l.Right}.WriteSQL(w) }

// Gt represents a greater-than comparison (>).
type Gt struct {
	Left  Expr
	Right Expr
}

func (g Gt) WriteSQL(w *Writer) { comparison{">", g.Left, g.Right}.WriteSQL(w) }

// Lte represents a less-than-or-equal comparison (<=).
type Lte struct {
	Left  Expr
	Right Expr
}

func (l Lte) WriteSQL(w *Writer) { comparison{"<=", l.Left, l.Right}.WriteSQL(w) }

// Gte represents a greater-than-or-equal comparison (>=).
type Gte struct {
	Left  Expr
	Right Expr
}

func (g Gte) WriteSQL(w *Writer) { comparison{">=", g.Left, g.Right}.WriteSQL(w) }

// Logical operators

// filterNilExprs removes nil expressions from the slice.
func filterNilExprs(exprs []Expr) []Expr {
	filtered := make([]Expr, 0, len(exprs))
	for _, e := range exprs {
		if e != nil {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// writeJoined renders expressions joined by a separator, wrapped in parentheses if more than one.
func writeJoined(w *Writer, exprs []Expr, sep, emptyVal string) {
	switch len(exprs) {
	case 0:
		w.WriteString(emptyVal)
	case 1:
		exprs[0].WriteSQL(w)
	default:
		w.WriteString("(")
		w.WriteList(exprs, sep)
		w.WriteString(")")
	}
}

// AndExpr represents a logical AND of multiple expressions.
type AndExpr struct {
	Exprs []Expr
}

func (a AndExpr) WriteSQL(w *Writer) { writeJoined(w, a.Exprs, " AND ", "TRUE") }

// And creates an AND expression from multiple expressions.
func And(exprs ...Expr) AndExpr {
	return AndExpr{Exprs: filterNilExprs(exprs)}
}

// OrExpr represents a logical OR of multiple expressions.
type OrExpr struct {
	Exprs []Expr
}

func (o OrExpr) WriteSQL(w *Writer) { writeJoined(w, o.Exprs, " OR ", "FALSE") }

// Or creates an OR expression from multiple expressions.
func Or(exprs ...Expr) OrExpr {
	return OrExpr{Exprs: filterNilExprs(exprs)}
}

// NotExpr represents a logical NOT of an expression.
type NotExpr struct {
	Expr Expr
}

func (n NotExpr) WriteSQL(w *Writer) {
	w.WriteString("NOT (")
	n.Expr.WriteSQL(w)
	w.WriteString(")")
}

// Not creates a NOT expression.
func Not(expr Expr) NotExpr { return NotExpr{Expr: expr} }

// IsNull represents IS NULL check.
type IsNull struct {
	Expr Expr
}

func (i IsNull) WriteSQL(w *Writer) {
	i.Expr.WriteSQL(w)
	w.WriteString(" IS NULL")
}

// IsNotNull represents IS NOT NULL check.
type IsNotNull struct {
	Expr Expr
}

func (i IsNotNull) WriteSQL(w *Writer) {
	i.Expr.WriteSQL(w)
	w.WriteString(" IS NOT NULL")
}
