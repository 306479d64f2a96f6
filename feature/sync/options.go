package sync

import "device-sync/core/abm"

// Options controls a single reconciliation run.
type Options struct {
	// DryRun computes mappings and diffs but issues zero write calls.
	DryRun bool
	// Limit caps how many devices are processed. Zero means no cap. The
	// outcome still reports the full source population size so a capped run
	// is distinguishable from a short fleet.
	Limit int
	// Serials restricts the run to the given serial numbers. Empty means
	// the whole population.
	Serials []string
	// Workers overrides the configured worker count when positive.
	Workers int
}

// selectDevices applies the serial filter and the device cap in fetch order.
func selectDevices(devices []abm.Device, opts Options) []abm.Device {
	selected := devices

	if len(opts.Serials) > 0 {
		wanted := make(map[string]struct{}, len(opts.Serials))
		for _, s := range opts.Serials {
			wanted[s] = struct{}{}
		}
		filtered := make([]abm.Device, 0, len(opts.Serials))
		for _, d := range devices {
			if _, ok := wanted[d.SerialNumber]; ok {
				filtered = append(filtered, d)
			}
		}
		selected = filtered
	}

	if opts.Limit > 0 && opts.Limit < len(selected) {
		selected = selected[:opts.Limit]
	}
	return selected
}
