// Package report renders run results for operators: structured log
// summaries, console tables for drifted and missing devices, and CSV
// exports for offline analysis.
package report
