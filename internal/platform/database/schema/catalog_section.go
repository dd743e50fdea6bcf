package schema

// CatalogSectionTable represents the 'catalog.section' table
type CatalogSectionTable struct {
	Table string
	ID    string
	Name  string
}

// CatalogSection is the schema definition for catalog.section
var CatalogSection = CatalogSectionTable{
	Table: "catalog.section",
	ID:    "id",
	Name:  "name",
}

// Columns returns all standard column names
func (t CatalogSectionTable) Columns() []string {
	return []string{t.ID, t.Name}
}
