package purchasing

import (
	"strconv"
	"time"

	"device-sync/core/jamf"
	"device-sync/core/utils"
)

// dateLayouts are the formats Jamf has been observed storing dates in.
var dateLayouts = []string{
	dateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// Compare evaluates the six purchasing fields of a device, source-derived
// values against what Jamf currently stores. The result always contains one
// entry per field, in canonical field order, so report output is
// reproducible across runs.
//
// Values are compared after type normalization: a stored string "true" equals
// boolean true, "3" equals 3, and dates are parsed before comparison so pure
// formatting differences are not reported as discrepancies.
func Compare(mapped PurchaseData, target jamf.Purchasing) []FieldDiff {
	return []FieldDiff{
		compareBool(FieldPurchased, mapped.Purchased, target.Purchased),
		compareInt(FieldLifeExpectancy, mapped.LifeExpectancy, target.LifeExpectancy),
		compareDate(FieldPODate, mapped.PODate, target.PODate),
		compareDate(FieldWarrantyDate, mapped.WarrantyDate, target.WarrantyDate),
		compareString(FieldPONumber, mapped.PONumber, target.PONumber),
		compareString(FieldVendor, mapped.Vendor, target.Vendor),
	}
}

// Mismatches filters a comparison down to the fields needing remediation.
func Mismatches(diffs []FieldDiff) []FieldDiff {
	var out []FieldDiff
	for _, d := range diffs {
		if d.Status != FieldMatch {
			out = append(out, d)
		}
	}
	return out
}

// InSync reports whether every field matched.
func InSync(diffs []FieldDiff) bool {
	return len(Mismatches(diffs)) == 0
}

func compareBool(field string, source bool, target any) FieldDiff {
	diff := FieldDiff{Field: field, SourceValue: strconv.FormatBool(source)}
	if target == nil || utils.ToString(target) == "" {
		diff.Status = FieldMissing
		return diff
	}

	targetBool := utils.ToBool(target)
	diff.TargetValue = strconv.FormatBool(targetBool)
	if targetBool == source {
		diff.Status = FieldMatch
	} else {
		diff.Status = FieldMismatch
	}
	return diff
}

func compareInt(field string, source int, target any) FieldDiff {
	diff := FieldDiff{Field: field, SourceValue: strconv.Itoa(source)}
	if target == nil || utils.ToString(target) == "" {
		diff.Status = FieldMissing
		return diff
	}

	targetInt := utils.ToInt(target)
	diff.TargetValue = strconv.Itoa(targetInt)
	if targetInt == source {
		diff.Status = FieldMatch
	} else {
		diff.Status = FieldMismatch
	}
	return diff
}

func compareDate(field, source string, target any) FieldDiff {
	diff := FieldDiff{Field: field, SourceValue: source, TargetValue: utils.ToString(target)}
	switch {
	case diff.TargetValue == "" && source == "":
		diff.Status = FieldMatch
	case diff.TargetValue == "":
		diff.Status = FieldMissing
	case normalizeDate(source) == normalizeDate(diff.TargetValue):
		diff.Status = FieldMatch
	default:
		diff.Status = FieldMismatch
	}
	return diff
}

func compareString(field, source string, target any) FieldDiff {
	diff := FieldDiff{Field: field, SourceValue: source, TargetValue: utils.ToString(target)}
	switch {
	case diff.TargetValue == "" && source == "":
		diff.Status = FieldMatch
	case diff.TargetValue == "":
		diff.Status = FieldMissing
	case diff.TargetValue == source:
		diff.Status = FieldMatch
	default:
		diff.Status = FieldMismatch
	}
	return diff
}

// normalizeDate reduces a date string to YYYY-MM-DD form. Unparseable input
// is returned unchanged so it still participates in comparison.
func normalizeDate(value string) string {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.Format(dateLayout)
		}
	}
	return value
}
