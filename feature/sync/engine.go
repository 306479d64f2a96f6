package sync

import (
	"context"
	"errors"
	"sort"
	gosync "sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"device-sync/core/abm"
	"device-sync/core/auth"
	"device-sync/core/jamf"
	"device-sync/feature/purchasing"
)

// Engine drives one end-to-end reconciliation run: fetch, match, map, diff,
// and conditionally write, under rate limiting and dry-run/limit policy.
type Engine struct {
	source  abm.Client
	target  jamf.Client
	vendors purchasing.VendorMap
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewEngine assembles an engine. rateInterval is the minimum spacing of Jamf
// calls; zero or negative disables throttling (tests only).
func NewEngine(source abm.Client, target jamf.Client, vendors purchasing.VendorMap, rateInterval time.Duration, log *zap.Logger) *Engine {
	limit := rate.Inf
	if rateInterval > 0 {
		limit = rate.Every(rateInterval)
	}
	return &Engine{
		source:  source,
		target:  target,
		vendors: vendors,
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}
}

// Sync performs a write-mode run. Per-device failures are absorbed into the
// outcome; only auth errors, a source fetch failure, or cancellation abort
// the run. On cancellation the partial outcome is still returned alongside
// the context error.
func (e *Engine) Sync(ctx context.Context, opts Options) (*Outcome, error) {
	outcome := &Outcome{}

	devices, err := e.source.ListDevices(ctx)
	if err != nil {
		return nil, err
	}
	outcome.Total = len(devices)

	selected := selectDevices(devices, opts)
	e.log.Info("Starting device sync",
		zap.Int("total", outcome.Total),
		zap.Int("selected", len(selected)),
		zap.Bool("dry_run", opts.DryRun),
	)

	err = e.runDevices(ctx, selected, opts.Workers, func(ctx context.Context, device abm.Device) error {
		return e.syncDevice(ctx, device, opts, outcome)
	})
	return outcome, err
}

// Compare performs a read-only run, collecting missing devices and per-field
// discrepancies instead of writing.
func (e *Engine) Compare(ctx context.Context, opts Options) (*Comparison, error) {
	comparison := &Comparison{}

	devices, err := e.source.ListDevices(ctx)
	if err != nil {
		return nil, err
	}
	comparison.Total = len(devices)

	selected := selectDevices(devices, opts)
	e.log.Info("Comparing purchase information",
		zap.Int("total", comparison.Total),
		zap.Int("selected", len(selected)),
	)

	err = e.runDevices(ctx, selected, opts.Workers, func(ctx context.Context, device abm.Device) error {
		return e.compareDevice(ctx, device, comparison)
	})

	// Workers may finish out of fetch order; restore it so reports are
	// reproducible.
	order := make(map[string]int, len(selected))
	for i, d := range selected {
		order[d.SerialNumber] = i
	}
	comparison.mu.Lock()
	sort.SliceStable(comparison.Missing, func(i, j int) bool {
		return order[comparison.Missing[i].SerialNumber] < order[comparison.Missing[j].SerialNumber]
	})
	sort.SliceStable(comparison.Differences, func(i, j int) bool {
		return order[comparison.Differences[i].Device.SerialNumber] < order[comparison.Differences[j].Device.SerialNumber]
	})
	comparison.mu.Unlock()

	return comparison, err
}

// runDevices feeds devices to a bounded worker pool. The pagination already
// happened; only per-device Jamf calls run concurrently. A fatal error from
// any worker (or run-level cancellation) stops dispatching promptly, but
// each in-flight device runs to a terminal state first.
func (e *Engine) runDevices(ctx context.Context, devices []abm.Device, workers int, handle func(context.Context, abm.Device) error) error {
	if workers <= 0 {
		workers = 1
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		fatalOnce gosync.Once
		fatalErr  error
	)
	abort := func(err error) {
		fatalOnce.Do(func() {
			fatalErr = err
			cancel()
		})
	}

	jobs := make(chan abm.Device)
	var wg gosync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for device := range jobs {
				if err := handle(runCtx, device); err != nil {
					abort(err)
				}
			}
		}()
	}

dispatch:
	for _, device := range devices {
		select {
		case jobs <- device:
		case <-runCtx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if fatalErr != nil {
		return fatalErr
	}
	return ctx.Err()
}

// syncDevice runs one device through lookup, mapping and write (or dry-run)
// and records its terminal state.
func (e *Engine) syncDevice(ctx context.Context, device abm.Device, opts Options, outcome *Outcome) error {
	log := e.log.With(zap.String("serial", device.SerialNumber))

	computer, err := e.lookup(ctx, device.SerialNumber)
	switch {
	case errors.Is(err, jamf.ErrNotFound):
		log.Warn("Device not found in Jamf")
		outcome.recordNotFound()
		return nil
	case err != nil:
		if fatal := fatalError(err); fatal != nil {
			return fatal
		}
		log.Error("Jamf lookup failed", zap.Error(err))
		outcome.recordFailure(lookupFailure(device.SerialNumber, err), false)
		return nil
	}

	mapped := purchasing.BuildPurchaseData(device, e.vendors)
	diffs := purchasing.Mismatches(purchasing.Compare(mapped, computer.Purchasing))

	if opts.DryRun {
		log.Info("Dry run: would update purchasing",
			zap.Int("computer_id", computer.ID),
			zap.Int("differing_fields", len(diffs)),
		)
		outcome.recordWouldUpdate()
		return nil
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return err
	}
	if err := e.target.UpdatePurchasing(ctx, computer.ID, mapped.ToUpdate()); err != nil {
		if fatal := fatalError(err); fatal != nil {
			return fatal
		}
		log.Error("Jamf update failed", zap.Error(err))
		outcome.recordFailure(writeFailure(device.SerialNumber, computer.ID, err), true)
		return nil
	}

	log.Info("Updated purchasing", zap.Int("computer_id", computer.ID), zap.Int("corrected_fields", len(diffs)))
	outcome.recordUpdated()
	return nil
}

// compareDevice runs one device through lookup, mapping and diff and records
// the result.
func (e *Engine) compareDevice(ctx context.Context, device abm.Device, comparison *Comparison) error {
	computer, err := e.lookup(ctx, device.SerialNumber)
	switch {
	case errors.Is(err, jamf.ErrNotFound):
		comparison.recordMissing(device)
		return nil
	case err != nil:
		if fatal := fatalError(err); fatal != nil {
			return fatal
		}
		e.log.Error("Jamf lookup failed", zap.String("serial", device.SerialNumber), zap.Error(err))
		comparison.recordFailure(lookupFailure(device.SerialNumber, err))
		return nil
	}

	mapped := purchasing.BuildPurchaseData(device, e.vendors)
	diffs := purchasing.Compare(mapped, computer.Purchasing)

	if purchasing.InSync(diffs) {
		comparison.recordInSync()
		return nil
	}
	comparison.recordDifference(DeviceDiff{
		Device:     device,
		ComputerID: computer.ID,
		Mapped:     mapped,
		Fields:     diffs,
	})
	return nil
}

// lookup issues a rate-gated serial lookup.
func (e *Engine) lookup(ctx context.Context, serial string) (*jamf.Computer, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return e.target.FindComputerBySerial(ctx, serial)
}

// fatalError returns a non-nil error for failures that must abort the whole
// run rather than be absorbed as a per-device failure.
func fatalError(err error) error {
	var authErr *auth.Error
	if errors.As(err, &authErr) {
		return authErr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func lookupFailure(serial string, err error) Failure {
	f := Failure{Serial: serial, Reason: err.Error()}
	var lookupErr *jamf.LookupError
	if errors.As(err, &lookupErr) {
		f.StatusCode = lookupErr.StatusCode
	}
	return f
}

func writeFailure(serial string, computerID int, err error) Failure {
	f := Failure{Serial: serial, ComputerID: computerID, Reason: err.Error()}
	var writeErr *jamf.WriteError
	if errors.As(err, &writeErr) {
		f.StatusCode = writeErr.StatusCode
	}
	return f
}
