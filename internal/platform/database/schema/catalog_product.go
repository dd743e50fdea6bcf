package schema

// CatalogProductTable represents the 'catalog.product' table
type CatalogProductTable struct {
	Table     string
	ID        string
	Name      string
	Price     string
	SectionID string
}

// CatalogProduct is the schema definition for catalog.product
var CatalogProduct = CatalogProductTable{
	Table:     "catalog.product",
	ID:        "id",
	Name:      "name",
	Price:     "price",
	SectionID: "sectionid",
}

// Columns returns all standard column names
func (t CatalogProductTable) Columns() []string {
	return []string{t.ID, t.Name, t.Price, t.SectionID}
}
