package sync

// Config holds run-policy configuration for the reconciliation engine.
type Config struct {
	// RateIntervalMS is the minimum interval between Jamf API calls in
	// milliseconds. Jamf throttles aggressive clients mid-run, which would
	// leave a reconciliation incomplete, so this is not optional.
	RateIntervalMS int `mapstructure:"rate_interval_ms" default:"500"`
	// Workers is the number of concurrent device workers. 1 keeps the run
	// strictly sequential; the rate gate applies regardless of worker count.
	Workers int `mapstructure:"workers" default:"1"`
	// VendorMapping is the path of the vendor token to name JSON file.
	// A missing file falls back to raw vendor tokens.
	VendorMapping string `mapstructure:"vendor_mapping" default:"vendor_mapping.json"`
}
