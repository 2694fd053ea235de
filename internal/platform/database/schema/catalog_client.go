package schema

// CatalogClientTable represents the 'catalog.client' table
type CatalogClientTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Phone     string
	Username  string
	CreatedAt string
}

var CatalogClient = CatalogClientTable{
	Table:     "catalog.client",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Phone:     "phone",
	Username:  "username",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t CatalogClientTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.Phone, t.Username, t.CreatedAt}
}
