// Package doctor verifies that a PostgreSQL database agrees with the pgfts
// declarations.
//
// The doctor command compares the declared type OIDs, function signatures and
// operator signatures with pg_type, pg_proc and pg_operator, checks the text
// search configuration, and finally runs a rendered search predicate.
//
// Example usage:
//
//	d := doctor.New(db, "english", logger)
//	report, err := d.Run(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	report.Print(os.Stdout, true) // verbose=true
package doctor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/pthm/pgfts"
	"github.com/pthm/pgfts/pkg/sqldsl"
	"github.com/pthm/pgfts/pkg/sqltype"
)

// Status represents the result of a health check.
type Status int

const (
	// StatusPass indicates the check passed.
	StatusPass Status = iota
	// StatusWarn indicates a non-critical issue.
	StatusWarn
	// StatusFail indicates a critical issue that will cause failures.
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Symbol returns a status indicator symbol for terminal output.
func (s Status) Symbol() string {
	switch s {
	case StatusPass:
		return "✓"
	case StatusWarn:
		return "⚠"
	case StatusFail:
		return "✗"
	default:
		return "?"
	}
}

// CheckResult represents the outcome of a single health check.
type CheckResult struct {
	// Category groups related checks (e.g., "Types", "Functions").
	Category string

	// Name is a short identifier for the check.
	Name string

	// Status is the check outcome.
	Status Status

	// Message is a human-readable description of the result.
	Message string

	// Details provides additional information for verbose output.
	Details string

	// FixHint suggests how to resolve issues.
	FixHint string
}

// Report contains all health check results.
type Report struct {
	Checks []CheckResult

	// Summary counts.
	Passed   int
	Warnings int
	Errors   int
}

// AddCheck adds a check result and updates summary counts.
func (r *Report) AddCheck(check CheckResult) {
	r.Checks = append(r.Checks, check)
	switch check.Status {
	case StatusPass:
		r.Passed++
	case StatusWarn:
		r.Warnings++
	case StatusFail:
		r.Errors++
	}
}

// Print writes the report to the given writer.
func (r *Report) Print(w io.Writer, verbose bool) {
	categories := make(map[string][]CheckResult)
	var categoryOrder []string
	for _, check := range r.Checks {
		if _, exists := categories[check.Category]; !exists {
			categoryOrder = append(categoryOrder, check.Category)
		}
		categories[check.Category] = append(categories[check.Category], check)
	}

	for _, cat := range categoryOrder {
		_, _ = fmt.Fprintf(w, "\n%s\n", cat)
		for _, check := range categories[cat] {
			_, _ = fmt.Fprintf(w, "  %s %s\n", check.Status.Symbol(), check.Message)
			if verbose && check.Details != "" {
				for _, line := range strings.Split(check.Details, "\n") {
					_, _ = fmt.Fprintf(w, "      %s\n", line)
				}
			}
			if check.Status != StatusPass && check.FixHint != "" {
				_, _ = fmt.Fprintf(w, "      Fix: %s\n", check.FixHint)
			}
		}
	}

	_, _ = fmt.Fprintf(w, "\nSummary: %d passed, %d warnings, %d errors\n",
		r.Passed, r.Warnings, r.Errors)
}

// HasErrors returns true if any check failed.
func (r *Report) HasErrors() bool {
	return r.Errors > 0
}

// Catalog is the set of declarations the doctor verifies.
type Catalog struct {
	Types     []sqltype.TypeInfo
	Functions []sqltype.FunctionSignature
	Operators []sqltype.OperatorSignature
}

// DefaultCatalog returns the declarations of the pgfts package together with
// the built-in types their signatures reference.
func DefaultCatalog() Catalog {
	types := pgfts.Types()
	for _, t := range sqltype.Builtins() {
		types = append(types, sqltype.Info(t))
	}
	return Catalog{
		Types:     types,
		Functions: pgfts.Functions(),
		Operators: pgfts.Operators(),
	}
}

// minServerVersion is the first release with websearch_to_tsquery.
const minServerVersion = 110000

// Doctor performs health checks against a database.
type Doctor struct {
	db           *sql.DB
	searchConfig string
	catalog      Catalog
	logger       logrus.FieldLogger
}

// New creates a Doctor that checks DefaultCatalog. searchConfig names the text
// search configuration the application expects, e.g. "english".
func New(db *sql.DB, searchConfig string, logger logrus.FieldLogger) *Doctor {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Doctor{
		db:           db,
		searchConfig: searchConfig,
		catalog:      DefaultCatalog(),
		logger:       logger,
	}
}

// WithCatalog replaces the declarations to verify.
func (d *Doctor) WithCatalog(c Catalog) *Doctor {
	d.catalog = c
	return d
}

// Run executes all health checks and returns a report. Database errors abort
// the run; catalog disagreements are reported as failed checks.
func (d *Doctor) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	if err := d.checkServerVersion(ctx, report); err != nil {
		return nil, fmt.Errorf("checking server version: %w", err)
	}
	if err := d.checkTypes(ctx, report); err != nil {
		return nil, fmt.Errorf("checking types: %w", err)
	}
	if err := d.checkFunctions(ctx, report); err != nil {
		return nil, fmt.Errorf("checking functions: %w", err)
	}
	if err := d.checkOperators(ctx, report); err != nil {
		return nil, fmt.Errorf("checking operators: %w", err)
	}
	if err := d.checkSearchConfig(ctx, report); err != nil {
		return nil, fmt.Errorf("checking text search configuration: %w", err)
	}
	if err := d.checkExpression(ctx, report); err != nil {
		return nil, fmt.Errorf("checking search expression: %w", err)
	}

	return report, nil
}

// checkServerVersion warns when the server predates functions in the catalog.
func (d *Doctor) checkServerVersion(ctx context.Context, report *Report) error {
	var version int64
	err := d.db.QueryRowContext(ctx, `SELECT current_setting('server_version_num')::int`).Scan(&version)
	if err != nil {
		return err
	}
	d.logger.WithField("server_version_num", version).Debug("connected")

	if version < minServerVersion {
		report.AddCheck(CheckResult{
			Category: "Server",
			Name:     "version",
			Status:   StatusWarn,
			Message:  fmt.Sprintf("PostgreSQL %s is older than 11", formatVersion(version)),
			Details:  "websearch_to_tsquery is unavailable before PostgreSQL 11",
			FixHint:  "Upgrade the server or avoid WebsearchToTsQuery",
		})
		return nil
	}

	report.AddCheck(CheckResult{
		Category: "Server",
		Name:     "version",
		Status:   StatusPass,
		Message:  fmt.Sprintf("PostgreSQL %s", formatVersion(version)),
	})
	return nil
}

// checkTypes compares declared OIDs with pg_type.
func (d *Doctor) checkTypes(ctx context.Context, report *Report) error {
	var missing, mismatched []string

	for _, t := range d.catalog.Types {
		var oid, arrayOID int64
		err := d.db.QueryRowContext(ctx, `
			SELECT t.oid::bigint, t.typarray::bigint
			FROM pg_type t
			JOIN pg_namespace n ON n.oid = t.typnamespace
			WHERE n.nspname = 'pg_catalog'
			AND t.typname = $1
		`, t.Name).Scan(&oid, &arrayOID)
		if errors.Is(err, sql.ErrNoRows) {
			missing = append(missing, fmt.Sprintf("%v: %s", pgfts.ErrMissingType, t.Name))
			continue
		}
		if err != nil {
			return fmt.Errorf("looking up type %s: %w", t.Name, err)
		}

		d.logger.WithFields(logrus.Fields{"type": t.Name, "oid": oid, "array_oid": arrayOID}).Debug("type found")
		if uint32(oid) != t.OID || uint32(arrayOID) != t.ArrayOID {
			mismatched = append(mismatched, fmt.Sprintf("%v: %s declared (%d, %d), database has (%d, %d)",
				pgfts.ErrTypeMismatch, t.Name, t.OID, t.ArrayOID, oid, arrayOID))
		}
	}

	if len(missing) > 0 || len(mismatched) > 0 {
		report.AddCheck(CheckResult{
			Category: "Types",
			Name:     "oids",
			Status:   StatusFail,
			Message:  fmt.Sprintf("%d of %d types missing or mismatched", len(missing)+len(mismatched), len(d.catalog.Types)),
			Details:  strings.Join(append(missing, mismatched...), "\n"),
			FixHint:  "Text search types require PostgreSQL 8.3 or later; OIDs are fixed by the server",
		})
		return nil
	}

	report.AddCheck(CheckResult{
		Category: "Types",
		Name:     "oids",
		Status:   StatusPass,
		Message:  fmt.Sprintf("All %d types match pg_type", len(d.catalog.Types)),
		Details:  describeTypes(d.catalog.Types),
	})
	return nil
}

// checkFunctions looks up each function by name and exact argument types.
func (d *Doctor) checkFunctions(ctx context.Context, report *Report) error {
	var problems []string

	for _, fn := range d.catalog.Functions {
		var returns int64
		err := d.db.QueryRowContext(ctx, `
			SELECT p.prorettype::bigint
			FROM pg_proc p
			JOIN pg_namespace n ON n.oid = p.pronamespace
			WHERE n.nspname = 'pg_catalog'
			AND p.proname = $1
			AND p.proargtypes = $2::oidvector
		`, fn.Name, oidVector(fn.Params)).Scan(&returns)
		if errors.Is(err, sql.ErrNoRows) {
			problems = append(problems, fmt.Sprintf("%v: %s", pgfts.ErrMissingFunction, fn))
			continue
		}
		if err != nil {
			return fmt.Errorf("looking up function %s: %w", fn.Name, err)
		}

		d.logger.WithFields(logrus.Fields{"function": fn.String(), "prorettype": returns}).Debug("function found")
		if uint32(returns) != fn.Returns.OID {
			problems = append(problems, fmt.Sprintf("%v: %s returns OID %d in the database",
				pgfts.ErrTypeMismatch, fn, returns))
		}
	}

	if len(problems) > 0 {
		report.AddCheck(CheckResult{
			Category: "Functions",
			Name:     "signatures",
			Status:   StatusFail,
			Message:  fmt.Sprintf("%d of %d functions missing or mismatched", len(problems), len(d.catalog.Functions)),
			Details:  strings.Join(problems, "\n"),
			FixHint:  "Check the server version and search_path; functions are looked up in pg_catalog",
		})
		return nil
	}

	report.AddCheck(CheckResult{
		Category: "Functions",
		Name:     "signatures",
		Status:   StatusPass,
		Message:  fmt.Sprintf("All %d functions match pg_proc", len(d.catalog.Functions)),
	})
	return nil
}

// checkOperators looks up each operator by token and operand types.
func (d *Doctor) checkOperators(ctx context.Context, report *Report) error {
	var problems []string

	for _, op := range d.catalog.Operators {
		var left int64
		if !op.Prefix() {
			left = int64(op.Left.OID)
		}

		var result int64
		err := d.db.QueryRowContext(ctx, `
			SELECT o.oprresult::bigint
			FROM pg_operator o
			JOIN pg_namespace n ON n.oid = o.oprnamespace
			WHERE n.nspname = 'pg_catalog'
			AND o.oprname = $1
			AND o.oprleft::bigint = $2
			AND o.oprright::bigint = $3
		`, op.Token, left, int64(op.Right.OID)).Scan(&result)
		if errors.Is(err, sql.ErrNoRows) {
			problems = append(problems, fmt.Sprintf("%v: %s %s", pgfts.ErrMissingOperator, op.Name, op))
			continue
		}
		if err != nil {
			return fmt.Errorf("looking up operator %s: %w", op.Token, err)
		}

		d.logger.WithFields(logrus.Fields{"operator": op.String(), "oprresult": result}).Debug("operator found")
		if uint32(result) != op.Result.OID {
			problems = append(problems, fmt.Sprintf("%v: %s %s yields OID %d in the database",
				pgfts.ErrTypeMismatch, op.Name, op, result))
		}
	}

	if len(problems) > 0 {
		report.AddCheck(CheckResult{
			Category: "Operators",
			Name:     "signatures",
			Status:   StatusFail,
			Message:  fmt.Sprintf("%d of %d operators missing or mismatched", len(problems), len(d.catalog.Operators)),
			Details:  strings.Join(problems, "\n"),
		})
		return nil
	}

	report.AddCheck(CheckResult{
		Category: "Operators",
		Name:     "signatures",
		Status:   StatusPass,
		Message:  fmt.Sprintf("All %d operators match pg_operator", len(d.catalog.Operators)),
	})
	return nil
}

// checkSearchConfig verifies the configured text search configuration exists
// and compares it with the server default.
func (d *Doctor) checkSearchConfig(ctx context.Context, report *Report) error {
	var serverDefault string
	err := d.db.QueryRowContext(ctx, `SELECT current_setting('default_text_search_config')`).Scan(&serverDefault)
	if err != nil {
		return err
	}

	if d.searchConfig == "" {
		report.AddCheck(CheckResult{
			Category: "Text Search Configuration",
			Name:     "exists",
			Status:   StatusPass,
			Message:  fmt.Sprintf("Using server default %s", serverDefault),
		})
		return nil
	}

	// Resolve through regconfig input so qualified and mixed-case names
	// behave as they do in to_tsvector.
	var resolved string
	err = d.db.QueryRowContext(ctx, `SELECT $1::regconfig::text`, d.searchConfig).Scan(&resolved)
	if err != nil {
		if !pgfts.IsMissingConfigErr(pgfts.MapError("resolving search config", err)) && !isMissingSchema(err) {
			return err
		}

		report.AddCheck(CheckResult{
			Category: "Text Search Configuration",
			Name:     "exists",
			Status:   StatusWarn,
			Message:  fmt.Sprintf("Configuration %q not found", d.searchConfig),
			Details:  fmt.Sprintf("%v: %s (server default is %s)", pgfts.ErrMissingConfig, d.searchConfig, serverDefault),
			FixHint:  "Set search.config to an entry of pg_ts_config, or CREATE TEXT SEARCH CONFIGURATION",
		})
		return nil
	}

	report.AddCheck(CheckResult{
		Category: "Text Search Configuration",
		Name:     "exists",
		Status:   StatusPass,
		Message:  fmt.Sprintf("Configuration %q exists", d.searchConfig),
		Details:  fmt.Sprintf("Resolves to %s; server default: %s", resolved, serverDefault),
	})
	return nil
}

// SampleDocument and SampleQuery form the predicate executed by the
// expression check. The query must match the document.
const (
	SampleDocument = "the quick brown fox"
	SampleQuery    = "quick & fox"
)

// SamplePredicate returns the search predicate executed by the expression check.
func SamplePredicate(searchConfig string) sqltype.Expression[sqltype.Bool] {
	doc := sqltype.String(SampleDocument)
	query := sqltype.String(SampleQuery)
	if searchConfig == "" {
		return pgfts.ToTsVector(doc).Matches(pgfts.ToTsQuery(query))
	}
	cfg := pgfts.Config(searchConfig)
	return pgfts.ToTsVectorWith(cfg, doc).Matches(pgfts.ToTsQueryWith(cfg, query))
}

// checkExpression executes a rendered match predicate with bound parameters.
func (d *Doctor) checkExpression(ctx context.Context, report *Report) error {
	query, args := sqldsl.Bind(sqldsl.SelectStmt{
		Columns: []sqldsl.Expr{SamplePredicate(d.searchConfig)},
	})
	d.logger.WithField("sql", query).Debug("executing sample predicate")

	var matched bool
	if err := d.db.QueryRowContext(ctx, query, args...).Scan(&matched); err != nil {
		mapped := pgfts.MapError("sample predicate", err)
		if !isCatalogErr(mapped) && !isMissingSchema(err) {
			return err
		}
		report.AddCheck(CheckResult{
			Category: "Expressions",
			Name:     "match",
			Status:   StatusFail,
			Message:  "Sample search predicate failed",
			Details:  fmt.Sprintf("%s\n%v", query, mapped),
		})
		return nil
	}

	if !matched {
		report.AddCheck(CheckResult{
			Category: "Expressions",
			Name:     "match",
			Status:   StatusWarn,
			Message:  "Sample search predicate returned false",
			Details:  fmt.Sprintf("%s\nargs: %v", query, args),
			FixHint:  "The configuration may not stem or tokenize English text",
		})
		return nil
	}

	report.AddCheck(CheckResult{
		Category: "Expressions",
		Name:     "match",
		Status:   StatusPass,
		Message:  "Sample search predicate matched",
		Details:  query,
	})
	return nil
}

// isMissingSchema reports SQLSTATE 3F000, raised for a qualified name whose
// schema does not exist.
func isMissingSchema(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "3F000"
}

func isCatalogErr(err error) bool {
	return pgfts.IsMissingTypeErr(err) ||
		pgfts.IsTypeMismatchErr(err) ||
		pgfts.IsMissingFunctionErr(err) ||
		pgfts.IsMissingOperatorErr(err) ||
		pgfts.IsMissingConfigErr(err)
}

// oidVector renders parameter types in oidvector text form, e.g. "3614 3615".
func oidVector(params []sqltype.TypeInfo) string {
	oids := make([]string, len(params))
	for i, p := range params {
		oids[i] = fmt.Sprint(p.OID)
	}
	return strings.Join(oids, " ")
}

func describeTypes(types []sqltype.TypeInfo) string {
	lines := make([]string, len(types))
	for i, t := range types {
		lines[i] = fmt.Sprintf("%s: oid %d, array %d", t.Name, t.OID, t.ArrayOID)
	}
	return strings.Join(lines, "\n")
}

// formatVersion turns server_version_num (e.g. 160002) into "16.2".
func formatVersion(num int64) string {
	if num < 100000 {
		return fmt.Sprintf("%d.%d.%d", num/10000, num/100%100, num%100)
	}
	return fmt.Sprintf("%d.%d", num/10000, num%10000)
}
