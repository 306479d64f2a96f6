// Package jamf is the Jamf Pro API client.
//
// Jamf Pro is the fleet-management system whose purchasing fields this tool
// corrects. Two endpoints are used:
//
//   - The Classic API serial number lookup
//     (GET /JSSResource/computers/serialnumber/{serial}), because the modern
//     API has no comparable natural-key search. A 404 maps to ErrNotFound.
//   - The v1 inventory detail update
//     (PATCH /api/v1/computers-inventory-detail/{id}), which overwrites the
//     full purchasing field set.
//
// Lookups are cached for the duration of a run so report passes that visit
// the same serial more than once cost a single request.
package jamf
