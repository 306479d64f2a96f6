// Package config provides configuration management for the device sync tool.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - ABM: Apple Business Manager API endpoint, token and paging settings
//   - Jamf: Jamf Pro API endpoint, token and lookup cache settings
//   - Sync: rate limiting, worker count and vendor mapping file
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.ABM.BaseURL)
package config
