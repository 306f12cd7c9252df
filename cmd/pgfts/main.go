// Command pgfts inspects and exercises the pgfts text search bindings.
//
// Commands:
//   - doctor: verify declared types, functions and operators against a database
//   - catalog: list the declared types, functions and operators
//   - render: print the SQL for a search predicate and rank expression
//   - config show: print the effective configuration
//   - version: print version information
//
// Usage:
//
//	pgfts [flags] <command>
//
// Only doctor needs database access, via --db or database.* in pgfts.yaml.
package main

func main() {
	Execute()
}
