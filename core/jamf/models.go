package jamf

// Computer is a device record as stored in Jamf Pro, looked up by serial
// number but keyed internally by a numeric ID.
type Computer struct {
	// ID is Jamf's internal computer identifier, required for updates.
	ID int
	// SerialNumber is the natural key the record was found by.
	SerialNumber string
	// Purchasing is the purchasing metadata currently stored in Jamf.
	Purchasing Purchasing
}

// Purchasing holds the six purchasing fields as Jamf returned them. Values
// are kept loosely typed on purpose: the Classic API is inconsistent about
// booleans, integers and empty fields, and the diff engine needs to tell a
// genuinely absent value apart from a zero one.
type Purchasing struct {
	Purchased      any `json:"purchased"`
	LifeExpectancy any `json:"life_expectancy"`
	WarrantyDate   any `json:"warranty_expires"`
	Vendor         any `json:"vendor"`
	PODate         any `json:"po_date"`
	PONumber       any `json:"po_number"`
}

// PurchasingUpdate is the full purchasing field set written to the Jamf Pro
// v1 inventory detail endpoint. Every update overwrites all six fields.
type PurchasingUpdate struct {
	Purchased      bool   `json:"purchased"`
	LifeExpectancy int    `json:"lifeExpectancy"`
	WarrantyDate   string `json:"warrantyDate"`
	Vendor         string `json:"vendor"`
	PODate         string `json:"poDate"`
	PONumber       string `json:"poNumber"`
}

// computerEnvelope mirrors the Classic API serial number lookup response.
type computerEnvelope struct {
	Computer struct {
		General struct {
			ID int `json:"id"`
		} `json:"general"`
		Purchasing Purchasing `json:"purchasing"`
	} `json:"computer"`
}

// updatePayload wraps a PurchasingUpdate for the v1 inventory detail PATCH.
type updatePayload struct {
	Purchasing PurchasingUpdate `json:"purchasing"`
}
