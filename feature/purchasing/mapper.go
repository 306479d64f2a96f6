package purchasing

import (
	"time"

	"device-sync/core/abm"
)

// warrantyYears is the assumed warranty term for organization purchases.
const warrantyYears = 3

const dateLayout = "2006-01-02"

// BuildPurchaseData derives the purchasing field set for one ABM device.
// It is a pure function of its inputs and total: absent optional fields fall
// back (raw vendor token, empty PO number, empty dates when ABM supplied no
// timestamp) instead of failing.
func BuildPurchaseData(device abm.Device, vendors VendorMap) PurchaseData {
	data := PurchaseData{
		Purchased:      true,
		LifeExpectancy: warrantyYears,
		PONumber:       device.OrderNumber,
		Vendor:         vendors.Resolve(device.PurchaseSourceID),
	}

	if !device.AddedToOrg.IsZero() {
		added := device.AddedToOrg.UTC()
		data.PODate = added.Format(dateLayout)
		data.WarrantyDate = addYearsClamped(added, warrantyYears).Format(dateLayout)
	}

	return data
}

// addYearsClamped advances a date by whole calendar years, clamping to the
// end of the month when the source day does not exist in the target year.
// 2020-02-29 + 3 years is 2023-02-28, not 2023-03-01 and not 2023-02-26
// (which a fixed 3x365-day addition would produce).
func addYearsClamped(t time.Time, years int) time.Time {
	shifted := t.AddDate(years, 0, 0)
	if shifted.Month() != t.Month() {
		// AddDate normalized an invalid day into the next month; step back
		// to the last day of the intended month.
		shifted = shifted.AddDate(0, 0, -shifted.Day())
	}
	return shifted
}
