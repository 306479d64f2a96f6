package jamf

// Config holds configuration for the Jamf Pro API client.
type Config struct {
	// BaseURL is the Jamf Pro server URL, e.g. https://company.jamfcloud.com.
	BaseURL string `mapstructure:"base_url" default:""`
	// Token is a pre-fetched bearer token. Takes precedence over TokenScript.
	Token string `mapstructure:"token" default:""`
	// TokenScript is a helper script that prints a bearer token to stdout.
	TokenScript string `mapstructure:"token_script" default:"./get_jamf_token.sh"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// CacheTTLSeconds is how long serial lookups are cached within a run.
	// Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}
