// Package abm is the Apple Business Manager API client.
//
// ABM is the authoritative registry of organization-owned devices and their
// purchase metadata. The client's single concern is retrieving the full
// device population through the cursor-paginated /orgDevices listing.
//
// # Pagination
//
// Each page carries a batch of devices plus an opaque cursor. The walk ends
// only when the server stops returning a cursor; a page shorter than the
// requested size is not treated as end-of-data, since ABM serves partial
// pages mid-listing on large fleets.
//
// # Failure Semantics
//
// Any non-2xx page response aborts the fetch: a 401/403 surfaces as
// *auth.Error, anything else as *FetchError carrying the status and the page
// index. Devices gathered before the failure are discarded.
package abm
