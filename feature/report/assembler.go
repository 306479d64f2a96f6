package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"device-sync/core/abm"
	"device-sync/feature/purchasing"
	"device-sync/feature/sync"
)

// Assembler turns run results into console summaries, tables and CSV
// exports.
type Assembler struct {
	log *zap.Logger
}

func NewAssembler(log *zap.Logger) *Assembler {
	return &Assembler{log: log}
}

// SyncSummary logs the counters of a write-mode run, then one line per
// failed device so operators can retry them individually.
func (a *Assembler) SyncSummary(outcome *sync.Outcome, dryRun bool) {
	fields := []zap.Field{
		zap.Int("total", outcome.Total),
		zap.Int("processed", outcome.Processed),
		zap.Int("matched", outcome.Matched),
		zap.Int("not_found", outcome.NotFound),
		zap.Int("failed", outcome.Failed),
	}
	if dryRun {
		fields = append(fields, zap.Int("would_update", outcome.WouldUpdate))
		a.log.Info("Dry run complete", fields...)
	} else {
		fields = append(fields, zap.Int("updated", outcome.Updated))
		a.log.Info("Sync complete", fields...)
	}

	for _, f := range outcome.Failures {
		a.log.Warn("Device failed",
			zap.String("serial", f.Serial),
			zap.Int("computer_id", f.ComputerID),
			zap.Int("status", f.StatusCode),
			zap.String("reason", f.Reason),
		)
	}
}

// CompareSummary logs the counters of a read-only comparison run.
func (a *Assembler) CompareSummary(comparison *sync.Comparison) {
	a.log.Info("Comparison complete",
		zap.Int("total", comparison.Total),
		zap.Int("checked", comparison.Checked),
		zap.Int("in_sync", comparison.InSync),
		zap.Int("differences", len(comparison.Differences)),
		zap.Int("missing", comparison.NotFound),
		zap.Int("failed", comparison.Failed),
	)
}

// RenderDifferencesTable writes one row per drifted field. In-sync fields
// are omitted so the table only shows what a sync run would change.
func RenderDifferencesTable(w io.Writer, diffs []sync.DeviceDiff) error {
	table := tablewriter.NewTable(w)
	table.Header("Serial Number", "Field", "ABM Value", "Jamf Value", "Status")
	for _, d := range diffs {
		for _, f := range purchasing.Mismatches(d.Fields) {
			if err := table.Append(d.Device.SerialNumber, f.Field, f.SourceValue, f.TargetValue, string(f.Status)); err != nil {
				return err
			}
		}
	}
	return table.Render()
}

// RenderMissingTable writes one row per device absent from Jamf.
func RenderMissingTable(w io.Writer, missing []abm.Device) error {
	table := tablewriter.NewTable(w)
	table.Header("Serial Number", "Model", "Added to Org", "Order Number", "Source ID")
	for _, d := range missing {
		if err := table.Append(d.SerialNumber, d.Model, formatTimestamp(d.AddedToOrg), d.OrderNumber, d.PurchaseSourceID); err != nil {
			return err
		}
	}
	return table.Render()
}

// WriteMissingCSV exports the devices absent from Jamf for analysis.
func WriteMissingCSV(w io.Writer, missing []abm.Device) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Serial Number", "Model", "Added to Org", "Order Number", "Purchase Source", "Source ID"}); err != nil {
		return err
	}
	for _, d := range missing {
		row := []string{
			d.SerialNumber,
			d.Model,
			formatTimestamp(d.AddedToOrg),
			d.OrderNumber,
			d.PurchaseSourceType,
			d.PurchaseSourceID,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDifferencesCSV exports one row per drifted device, ABM and Jamf
// values side by side for every purchasing field.
func WriteDifferencesCSV(w io.Writer, diffs []sync.DeviceDiff) error {
	cw := csv.NewWriter(w)
	header := []string{
		"Serial Number", "Computer ID", "Model",
		"ABM_purchased", "Jamf_purchased",
		"ABM_lifeExpectancy", "Jamf_lifeExpectancy",
		"ABM_warrantyDate", "Jamf_warrantyDate",
		"ABM_vendor", "Jamf_vendor",
		"ABM_poDate", "Jamf_poDate",
		"ABM_poNumber", "Jamf_poNumber",
		"Differences_Count", "Differences_Fields",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, d := range diffs {
		byField := make(map[string]purchasing.FieldDiff, len(d.Fields))
		for _, f := range d.Fields {
			byField[f.Field] = f
		}
		mismatched := purchasing.Mismatches(d.Fields)
		names := make([]string, len(mismatched))
		for i, f := range mismatched {
			names[i] = f.Field
		}

		row := []string{d.Device.SerialNumber, strconv.Itoa(d.ComputerID), d.Device.Model}
		for _, field := range []string{
			purchasing.FieldPurchased,
			purchasing.FieldLifeExpectancy,
			purchasing.FieldWarrantyDate,
			purchasing.FieldVendor,
			purchasing.FieldPODate,
			purchasing.FieldPONumber,
		} {
			f := byField[field]
			row = append(row, f.SourceValue, f.TargetValue)
		}
		row = append(row, strconv.Itoa(len(mismatched)), strings.Join(names, ", "))
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
