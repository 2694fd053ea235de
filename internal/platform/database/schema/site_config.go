package schema

// SiteConfigTable represents the 'site.config' singleton table.
//
// The table holds exactly one row with the fixed primary key 'default';
// singleton enforcement lives in the CHECK constraint, not in query convention.
type SiteConfigTable struct {
	Table          string
	ID             string
	WhatsAppNumber string
	BusinessName   string
	Pricing        string
	SampleVideos   string
	SiteContent    string
	Messaging      string
	UpdatedAt      string
}

var SiteConfig = SiteConfigTable{
	Table:          "site.config",
	ID:             "id",
	WhatsAppNumber: "whatsappnumber",
	BusinessName:   "businessname",
	Pricing:        "pricing",
	SampleVideos:   "samplevideos",
	SiteContent:    "sitecontent",
	Messaging:      "messaging",
	UpdatedAt:      "updatedat",
}

// SingletonID is the fixed primary key of the single configuration row.
const SiteConfigSingletonID = "default"
