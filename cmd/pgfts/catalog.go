package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/pthm/pgfts"
	"github.com/pthm/pgfts/pkg/sqltype"
)

var catalogFormat string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List declared types, functions and operators",
	Example: `  # Human-readable listing
  pgfts catalog

  # Machine-readable listing
  pgfts catalog --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCatalog(cmd.OutOrStdout(), catalogFormat)
	},
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogFormat, "format", "o", "table", "output format: table, yaml or json")
}

// catalogDocument is the serialized form of the declarations.
type catalogDocument struct {
	Types     []sqltype.TypeInfo          `json:"types"`
	Functions []sqltype.FunctionSignature `json:"functions"`
	Operators []sqltype.OperatorSignature `json:"operators"`
}

func writeCatalog(w io.Writer, format string) error {
	doc := catalogDocument{
		Types:     pgfts.Types(),
		Functions: pgfts.Functions(),
		Operators: pgfts.Operators(),
	}

	switch format {
	case "table", "":
		return writeCatalogTable(w, doc)
	case "yaml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown format %q (want table, yaml or json)", format)
	}
}

func writeCatalogTable(w io.Writer, doc catalogDocument) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintln(tw, "TYPE\tOID\tARRAY OID")
	for _, t := range doc.Types {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\n", t.Name, t.OID, t.ArrayOID)
	}

	_, _ = fmt.Fprintln(tw, "\nFUNCTION\tSIGNATURE\t")
	for _, fn := range doc.Functions {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t\n", fn.Name, fn)
	}

	_, _ = fmt.Fprintln(tw, "\nOPERATOR\tTOKEN\tSIGNATURE")
	for _, op := range doc.Operators {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", op.Name, op.Token, op)
	}

	return tw.Flush()
}
