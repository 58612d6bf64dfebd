package postgres

import "fmt"

// TableNames holds environment-prefixed table names (dev_, test_, prod_).
type TableNames struct {
	SiteContent string
}

// NewTableNames creates table names with the given prefix.
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		SiteContent: fmt.Sprintf("%ssite_content", prefix),
	}
}
