// Package purchasing holds the domain logic of purchase-metadata
// reconciliation: deriving the purchasing field set a device should have
// from its ABM record, and comparing that against what Jamf currently
// stores.
//
// BuildPurchaseData is a pure transform; Compare produces one ordered
// FieldDiff per purchasing field, classifying each as a match, a mismatch,
// or a value missing in Jamf. Both are free of I/O so the sync engine and
// the reports consume them identically.
package purchasing
