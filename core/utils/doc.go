// Package utils provides common utility functions for the device-sync
// application. It includes type conversion helpers used to normalize loosely
// typed API payload values before field comparison.
package utils
