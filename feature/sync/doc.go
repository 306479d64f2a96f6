// Package sync contains the reconciliation engine.
//
// One run is: fetch the authoritative device population from ABM, then for
// each device look up its Jamf record by serial number, derive the
// purchasing fields it should have, and either write them (sync) or report
// the differences (compare).
//
// # Run Policy
//
// Devices are independent units of work. Per-device failures are counted
// and never interrupt the rest of the run; only authentication failures and
// a source fetch failure are fatal. Writes are full-field overwrites and are
// never retried within a run. A shared rate gate spaces all outbound Jamf
// calls regardless of how many workers are configured, and a run-level
// cancellation stops dispatching new devices while letting in-flight ones
// reach a terminal state, so the partial outcome is still coherent.
package sync
