package purchasing

import "device-sync/core/jamf"

// Field names of the six purchasing fields, in canonical diff order.
const (
	FieldPurchased      = "purchased"
	FieldLifeExpectancy = "lifeExpectancy"
	FieldPODate         = "poDate"
	FieldWarrantyDate   = "warrantyDate"
	FieldPONumber       = "poNumber"
	FieldVendor         = "vendor"
)

// FieldOrder is the canonical ordering of purchasing fields in diff output.
// Reports depend on this order being stable across runs.
var FieldOrder = []string{
	FieldPurchased,
	FieldLifeExpectancy,
	FieldPODate,
	FieldWarrantyDate,
	FieldPONumber,
	FieldVendor,
}

// PurchaseData is the purchasing field set a device should have in Jamf,
// derived from its ABM record. It is recomputed per device and never
// persisted.
type PurchaseData struct {
	Purchased      bool
	LifeExpectancy int
	// PODate and WarrantyDate are calendar dates in YYYY-MM-DD form. Empty
	// when ABM supplied no usable added-to-org timestamp.
	PODate       string
	WarrantyDate string
	PONumber     string
	Vendor       string
}

// ToUpdate converts the derived data into the Jamf write payload.
func (p PurchaseData) ToUpdate() jamf.PurchasingUpdate {
	return jamf.PurchasingUpdate{
		Purchased:      p.Purchased,
		LifeExpectancy: p.LifeExpectancy,
		WarrantyDate:   p.WarrantyDate,
		Vendor:         p.Vendor,
		PODate:         p.PODate,
		PONumber:       p.PONumber,
	}
}

// FieldStatus classifies the comparison outcome of a single field.
type FieldStatus string

const (
	// FieldMatch means source and target agree after normalization.
	FieldMatch FieldStatus = "match"
	// FieldMismatch means the target stores a different populated value.
	FieldMismatch FieldStatus = "mismatch"
	// FieldMissing means the target has no value where the source has one.
	// Remediation differs from a mismatch (fill vs. correct), so it is
	// classified separately.
	FieldMissing FieldStatus = "target-missing-field"
)

// FieldDiff is the per-field comparison result for one device.
type FieldDiff struct {
	Field       string
	SourceValue string
	TargetValue string
	Status      FieldStatus
}
