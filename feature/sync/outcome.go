package sync

import (
	gosync "sync"

	"device-sync/core/abm"
	"device-sync/feature/purchasing"
)

// Failure records one device whose Jamf call failed, with enough detail for
// a caller to retry that subset in a later invocation.
type Failure struct {
	Serial     string
	ComputerID int
	StatusCode int
	Reason     string
}

// Outcome aggregates the counters of one run. Counters accumulate
// monotonically under a single lock since multiple workers report into the
/// same outcome. Nothing here survives the run: every invocation recomputes
// from scratch.
type Outcome struct {
	mu gosync.Mutex

	// Total is the full source population size.
	Total int
	// Processed is how many devices reached a terminal state.
	Processed int
	// Matched is how many devices were found in Jamf.
	Matched int
	// Updated is how many devices were written successfully.
	Updated int
	// WouldUpdate is how many devices a dry run would have written.
	WouldUpdate int
	// Failed is how many devices ended in a failed Jamf call.
	Failed int
	// NotFound is how many serials had no Jamf record.
	NotFound int

	// Failures carries per-device failure detail.
	Failures []Failure
}

func (o *Outcome) recordNotFound() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.NotFound++
	o.Processed++
}

func (o *Outcome) recordUpdated() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Matched++
	o.Updated++
	o.Processed++
}

func (o *Outcome) recordWouldUpdate() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Matched++
	o.WouldUpdate++
	o.Processed++
}

func (o *Outcome) recordFailure(f Failure, matched bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if matched {
		o.Matched++
	}
	o.Failed++
	o.Processed++
	o.Failures = append(o.Failures, f)
}

// DeviceDiff is the comparison result for one device present in both
// systems.
type DeviceDiff struct {
	Device     abm.Device
	ComputerID int
	Mapped     purchasing.PurchaseData
	Fields     []purchasing.FieldDiff
}

// Comparison aggregates a read-only comparison run.
type Comparison struct {
	mu gosync.Mutex

	// Total is the full source population size.
	Total int
	// Checked is how many devices reached a terminal state.
	Checked int
	// InSync is how many matched devices had no field discrepancies.
	InSync int
	// NotFound is how many serials had no Jamf record.
	NotFound int
	// Failed is how many lookups failed.
	Failed int

	// Missing lists the devices absent from Jamf, in fetch order.
	Missing []abm.Device
	// Differences lists devices with at least one field discrepancy, in
	// fetch order.
	Differences []DeviceDiff
	// Failures carries per-device failure detail.
	Failures []Failure
}

func (c *Comparison) recordMissing(d abm.Device) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotFound++
	c.Checked++
	c.Missing = append(c.Missing, d)
}

func (c *Comparison) recordInSync() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.InSync++
	c.Checked++
}

func (c *Comparison) recordDifference(d DeviceDiff) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Checked++
	c.Differences = append(c.Differences, d)
}

func (c *Comparison) recordFailure(f Failure) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Failed++
	c.Checked++
	c.Failures = append(c.Failures, f)
}
