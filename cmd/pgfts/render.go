package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/pthm/pgfts"
	"github.com/pthm/pgfts/pkg/sqldsl"
	"github.com/pthm/pgfts/pkg/sqltype"
)

// renderOptions selects the search statement printed by render.
type renderOptions struct {
	Document string // literal document text
	Table    string // table to search instead of a literal document
	Column   string // text column of Table
	Query    string
	Syntax   string // tsquery, plain, phrase or websearch
	Config   string // text search configuration; empty uses the server default
	Limit    int
	Bind     bool
}

var (
	renderOpts       renderOptions
	renderNoConfig   bool
	renderConfigFlag string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print search SQL",
	Long: `Print the SQL for a text search: the match predicate and its ts_rank score.

With --document the statement evaluates a literal document. With --table and
--column it searches a table and orders rows by rank.`,
	Example: `  # Inline literals
  pgfts render --document "the quick fox" --query quick

  # Placeholders and arguments
  pgfts render --document "the quick fox" --query quick --bind

  # Search a table with web search syntax
  pgfts render --table documents --column body --query '"quick fox" -dog' --syntax websearch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := renderOpts
		opts.Config = resolveString(renderConfigFlag, cfg.Search.Config)
		if renderNoConfig {
			opts.Config = ""
		}
		return writeRender(cmd.OutOrStdout(), opts)
	},
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderOpts.Document, "document", "", "document text")
	f.StringVar(&renderOpts.Table, "table", "", "table to search")
	f.StringVar(&renderOpts.Column, "column", "", "text column to search (with --table)")
	f.StringVar(&renderOpts.Query, "query", "", "query text")
	f.StringVar(&renderOpts.Syntax, "syntax", "tsquery", "query syntax: tsquery, plain, phrase or websearch")
	f.StringVar(&renderConfigFlag, "search-config", "", "text search configuration (default from config)")
	f.BoolVar(&renderNoConfig, "server-default", false, "use the server's default_text_search_config")
	f.IntVar(&renderOpts.Limit, "limit", 10, "row limit (with --table)")
	f.BoolVar(&renderOpts.Bind, "bind", false, "print $n placeholders and the argument list")
	_ = renderCmd.MarkFlagRequired("query")
	renderCmd.MarkFlagsMutuallyExclusive("document", "table")
	renderCmd.MarkFlagsRequiredTogether("table", "column")
}

// searchStatement builds the statement described by opts.
func searchStatement(opts renderOptions) (sqldsl.SelectStmt, error) {
	var document sqltype.AsExpression[sqltype.Text]
	switch {
	case opts.Table != "":
		if opts.Column == "" {
			return sqldsl.SelectStmt{}, errors.New("--column is required with --table")
		}
		document = sqltype.Col[sqltype.Text](quoteQualified(opts.Table), pq.QuoteIdentifier(opts.Column))
	case opts.Document != "":
		document = sqltype.String(opts.Document)
	default:
		return sqldsl.SelectStmt{}, errors.New("one of --document or --table is required")
	}

	vector, query, err := searchExprs(opts, document)
	if err != nil {
		return sqldsl.SelectStmt{}, err
	}

	if opts.Table == "" {
		return sqldsl.SelectStmt{
			Columns: []sqldsl.Expr{
				sqldsl.SelectAs(vector.Matches(query), "matches"),
				sqldsl.SelectAs(vector.Rank(query), "rank"),
			},
		}, nil
	}

	return sqldsl.SelectStmt{
		Columns: []sqldsl.Expr{
			sqldsl.Raw(quoteQualified(opts.Table) + ".*"),
			sqldsl.SelectAs(vector.Rank(query), "rank"),
		},
		From:    sqldsl.TableRef{Name: quoteQualified(opts.Table)},
		Where:   vector.Matches(query),
		OrderBy: []sqldsl.OrderBy{{Expr: sqldsl.Raw("rank"), Desc: true}},
		Limit:   opts.Limit,
	}, nil
}

// quoteQualified quotes each part of a possibly schema-qualified name.
func quoteQualified(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, ".")
}

// searchExprs normalizes the document and parses the query with the chosen
// syntax, both under opts.Config when set.
func searchExprs(opts renderOptions, document sqltype.AsExpression[sqltype.Text]) (pgfts.VectorExpr, pgfts.QueryExpr, error) {
	text := sqltype.String(opts.Query)

	if opts.Config == "" {
		var query pgfts.QueryExpr
		switch opts.Syntax {
		case "tsquery", "":
			query = pgfts.ToTsQuery(text)
		case "plain":
			query = pgfts.PlainToTsQuery(text)
		case "phrase":
			query = pgfts.PhraseToTsQuery(text)
		case "websearch":
			query = pgfts.WebsearchToTsQuery(text)
		default:
			return pgfts.VectorExpr{}, pgfts.QueryExpr{}, unknownSyntax(opts.Syntax)
		}
		return pgfts.ToTsVector(document), query, nil
	}

	cfg := pgfts.Config(opts.Config)
	var query pgfts.QueryExpr
	switch opts.Syntax {
	case "tsquery", "":
		query = pgfts.ToTsQueryWith(cfg, text)
	case "plain":
		query = pgfts.PlainToTsQueryWith(cfg, text)
	case "phrase":
		query = pgfts.PhraseToTsQueryWith(cfg, text)
	case "websearch":
		query = pgfts.WebsearchToTsQueryWith(cfg, text)
	default:
		return pgfts.VectorExpr{}, pgfts.QueryExpr{}, unknownSyntax(opts.Syntax)
	}
	return pgfts.ToTsVectorWith(cfg, document), query, nil
}

func unknownSyntax(syntax string) error {
	return fmt.Errorf("unknown query syntax %q (want tsquery, plain, phrase or websearch)", syntax)
}

func writeRender(w io.Writer, opts renderOptions) error {
	stmt, err := searchStatement(opts)
	if err != nil {
		return err
	}

	if !opts.Bind {
		_, err = fmt.Fprintln(w, sqldsl.SQL(stmt)+";")
		return err
	}

	query, args := sqldsl.Bind(stmt)
	var b strings.Builder
	b.WriteString(query)
	b.WriteString(";\n")
	for i, arg := range args {
		_, _ = fmt.Fprintf(&b, "-- $%d = %q\n", i+1, arg)
	}
	_, err = io.WriteString(w, b.String())
	return err
}
