package models

// Resource is a static entry in the driver-resources directory.
type Resource struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	URL      string `json:"url"`
	Summary  string `json:"summary"`
}

const (
	ResourceFuelCard      = "fuel_card"
	ResourceFinancialTool = "financial_tool"
	ResourceLoadBoard     = "load_board"
	ResourceAssociation   = "association"
)

// DefaultResourceCatalog is the fixed reference directory shown to drivers.
// Reference data only; notes against an entry are stored separately keyed
// by the resource name.
func DefaultResourceCatalog() []Resource {
	return []Resource{
		{Name: "WEX Fleet Card", Category: ResourceFuelCard, URL: "https://www.wexinc.com", Summary: "Fleet fuel card with per-gallon discounts at major truck stops"},
		{Name: "Comdata Card", Category: ResourceFuelCard, URL: "https://www.comdata.com", Summary: "Fuel and fleet payments with cash advance support"},
		{Name: "TCS Fuel Card", Category: ResourceFuelCard, URL: "https://www.tcsfuel.com", Summary: "No-fee fuel card for owner-operators"},
		{Name: "QuickBooks Self-Employed", Category: ResourceFinancialTool, URL: "https://quickbooks.intuit.com", Summary: "Mileage tracking and quarterly tax estimates for contractors"},
		{Name: "Stride", Category: ResourceFinancialTool, URL: "https://www.stridehealth.com", Summary: "Free mileage and expense tracking built for gig drivers"},
		{Name: "Found Banking", Category: ResourceFinancialTool, URL: "https://found.com", Summary: "Business banking with automatic tax withholding"},
		{Name: "DAT Load Board", Category: ResourceLoadBoard, URL: "https://www.dat.com", Summary: "Largest freight marketplace for owner-operators"},
		{Name: "Truckstop", Category: ResourceLoadBoard, URL: "https://truckstop.com", Summary: "Load board with rate insights and broker credit checks"},
		{Name: "123Loadboard", Category: ResourceLoadBoard, URL: "https://www.123loadboard.com", Summary: "Load matching with mobile-first search"},
		{Name: "OOIDA", Category: ResourceAssociation, URL: "https://www.ooida.com", Summary: "Owner-Operator Independent Drivers Association"},
		{Name: "NALTO", Category: ResourceAssociation, URL: "https://www.nalto.org", Summary: "National Association of Lease and Temporary Operators"},
		{Name: "CIDA", Category: ResourceAssociation, URL: "https://www.customizeddelivery.org", Summary: "Customized Logistics and Delivery Association"},
	}
}

// ResourcesByCategory filters the catalog; an empty category returns all.
func ResourcesByCategory(catalog []Resource, category string) []Resource {
	if category == "" {
		return catalog
	}
	out := make([]Resource, 0, len(catalog))
	for _, r := range catalog {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}
