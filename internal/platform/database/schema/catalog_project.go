package schema

// CatalogProjectTable represents the 'catalog.project' table
type CatalogProjectTable struct {
	Table         string
	ID            string
	ClientID      string
	Name          string
	Type          string
	Duration      string
	Quantity      string
	Status        string
	DownloadLinks string
	DeliveryDate  string
	CreatedAt     string
}

var CatalogProject = CatalogProjectTable{
	Table:         "catalog.project",
	ID:            "id",
	ClientID:      "clientid",
	Name:          "name",
	Type:          "type",
	Duration:      "duration",
	Quantity:      "quantity",
	Status:        "status",
	DownloadLinks: "downloadlinks",
	DeliveryDate:  "deliverydate",
	CreatedAt:     "createdat",
}

// Columns returns all standard column names
func (t CatalogProjectTable) Columns() []string {
	return []string{
		t.ID, t.ClientID, t.Name, t.Type, t.Duration, t.Quantity, t.Status, t.DownloadLinks, t.DeliveryDate, t.CreatedAt,
	}
}
