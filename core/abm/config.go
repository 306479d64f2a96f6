package abm

// Config holds configuration for the Apple Business Manager API client.
type Config struct {
	// BaseURL is the root of the ABM API.
	BaseURL string `mapstructure:"base_url" default:"https://api-business.apple.com/v1"`
	// Token is a pre-fetched bearer token. Takes precedence over TokenScript.
	Token string `mapstructure:"token" default:""`
	// TokenScript is a helper script that prints a bearer token to stdout.
	TokenScript string `mapstructure:"token_script" default:"./get_abm_token.sh"`
	// PageSize is the device count requested per page.
	PageSize int `mapstructure:"page_size" default:"100"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RetryCount is how many times a page fetch is retried on 429/5xx.
	RetryCount int `mapstructure:"retry_count" default:"3"`
}
