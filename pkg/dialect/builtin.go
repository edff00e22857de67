package dialect

// DefaultName is the dialect assumed when the settings file does not
// configure one.
const DefaultName = "duckdb"

func init() {
	Register(&Dialect{
		Name:  "duckdb",
		Quote: QuotePair{Start: `"`, End: `"`},
	})
	Register(&Dialect{
		Name:    "postgres",
		Quote:   QuotePair{Start: `"`, End: `"`},
		Aliases: []string{"postgresql"},
	})
	Register(&Dialect{
		Name:  "sqlite",
		Quote: QuotePair{Start: `"`, End: `"`},
	})
	Register(&Dialect{
		Name:  "mysql",
		Quote: QuotePair{Start: "`", End: "`"},
	})
	Register(&Dialect{
		Name:  "snowflake",
		Quote: QuotePair{Start: `"`, End: `"`},
	})
	Register(&Dialect{
		Name:    "spark",
		Quote:   QuotePair{Start: "`", End: "`"},
		Aliases: []string{"databricks"},
	})
	Register(&Dialect{
		Name:  "sqlserver",
		Quote: QuotePair{Start: "[", End: "]"},
		Aliases: []string{
			"tsql",
			"mssql",
		},
	})
}
