package cmd

import (
	"context"
	"fmt"
	"time"

	"device-sync/core/abm"
	"device-sync/core/auth"
	"device-sync/core/config"
	"device-sync/core/jamf"
	"device-sync/core/logger"
	"device-sync/feature/purchasing"
	"device-sync/feature/report"
	devsync "device-sync/feature/sync"

	"go.uber.org/zap"
)

// runtime bundles everything a command needs after bootstrap.
type runtime struct {
	cfg       *config.Config
	log       *zap.Logger
	engine    *devsync.Engine
	assembler *report.Assembler
}

// bootstrap loads configuration, builds the logger, acquires API tokens and
// wires the reconciliation engine.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l, runID := logger.WithRunID(l)
	l.Debug("Run started", zap.String("run_id", runID))

	abmToken, err := resolveToken(ctx, auth.SystemABM, cfg.ABM.Token, cfg.ABM.TokenScript)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire ABM token: %w", err)
	}
	jamfToken, err := resolveToken(ctx, auth.SystemJamf, cfg.Jamf.Token, cfg.Jamf.TokenScript)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire Jamf token: %w", err)
	}

	vendors, err := purchasing.LoadVendorMap(cfg.Sync.VendorMapping)
	if err != nil {
		return nil, fmt.Errorf("failed to load vendor mapping: %w", err)
	}
	if len(vendors) == 0 {
		l.Warn("No vendor mapping loaded, raw vendor tokens will be used", zap.String("path", cfg.Sync.VendorMapping))
	}

	source := abm.NewClient(cfg.ABM, abmToken)
	target := jamf.NewClient(cfg.Jamf, jamfToken)
	rateInterval := time.Duration(cfg.Sync.RateIntervalMS) * time.Millisecond
	engine := devsync.NewEngine(source, target, vendors, rateInterval, l)

	return &runtime{
		cfg:       cfg,
		log:       l,
		engine:    engine,
		assembler: report.NewAssembler(l),
	}, nil
}

// resolveToken prefers a statically configured token and falls back to the
// per-system helper script.
func resolveToken(ctx context.Context, system auth.System, token, script string) (string, error) {
	var provider auth.TokenProvider
	if token != "" {
		provider = auth.NewStaticProvider(map[auth.System]string{system: token})
	} else {
		provider = auth.NewScriptProvider(map[auth.System]string{system: script})
	}
	return provider.GetToken(ctx, system)
}
