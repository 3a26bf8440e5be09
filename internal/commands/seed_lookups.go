package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/resolookups/internal/config"
	"github.com/appetiteclub/resolookups/internal/events"
	"github.com/appetiteclub/resolookups/internal/metrics"
	"github.com/appetiteclub/resolookups/internal/mongo"
	"github.com/appetiteclub/resolookups/internal/seeding"
	"github.com/google/uuid"
)

const (
	metricsJob      = "reso_lookup_seed"
	seedApplication = "lookupseed"
)

type stopper interface {
	Stop(ctx context.Context) error
}

// SeedLookups adds reference values for every known lookup field that has no
// values in the lookup collection yet. Only a failed connection or a failed
// existence check is returned as an error.
func SeedLookups(ctx context.Context, cfg *apt.Config, log apt.Logger, in io.Reader, out io.Writer) error {
	start := time.Now()
	runID := uuid.NewString()
	log = log.With("run_id", runID)

	report := seeding.NewReporter(out)
	repo := mongo.NewLookupRepo(cfg, log)
	report.Start(repo.URL(), repo.Database())

	if err := repo.Start(ctx); err != nil {
		report.ConnectFailed(err)
		return err
	}
	defer closeRepo(ctx, repo, report, log)
	report.Connected()

	reg := metrics.NewRegistry()
	opts := []seeding.Option{
		seeding.WithLogger(log),
		seeding.WithMetrics(reg),
		seeding.WithRunID(runID),
	}

	if natsURL := config.Optional(cfg, config.KeyNATSURL); natsURL != "" {
		pub, err := events.NewNATSPublisher(natsURL)
		if err != nil {
			log.Error("Lookups seeded event disabled", "error", err)
		} else {
			defer pub.Close()
			opts = append(opts, seeding.WithPublisher(pub, runID, repo.Database()))
		}
	}

	if cfg.GetBoolOrFalse(config.KeySeedTrack) {
		opts = append(opts, seeding.WithTracker(repo, seedApplication))
	}

	gate := seeding.NewGate(cfg.GetBoolOrFalse(config.KeySeedAuto), in, out)
	seeder := seeding.NewSeeder(repo, gate, report, opts...)

	result, err := seeder.Run(ctx, seeding.FieldNames())
	reg.ObserveRun(start)
	pushMetrics(ctx, cfg, reg, repo.Database(), log)
	if err != nil {
		return fmt.Errorf("seed lookups: %w", err)
	}

	log.Info("Lookup seeding finished",
		"outcome", result.Outcome.String(),
		"inserted", result.Inserted,
		"created_fields", len(result.Plan.Created),
		"skipped_fields", len(result.Plan.Skipped),
	)
	return nil
}

// closeRepo releases the connection and prints the closing line.
func closeRepo(ctx context.Context, repo stopper, report *seeding.Reporter, log apt.Logger) {
	if err := repo.Stop(ctx); err != nil {
		log.Error("Cannot close MongoDB connection", "error", err)
	}
	report.Done()
}

func pushMetrics(ctx context.Context, cfg *apt.Config, reg *metrics.Registry, database string, log apt.Logger) {
	url := config.Optional(cfg, config.KeyPushgatewayURL)
	if url == "" {
		return
	}
	if err := reg.Push(ctx, url, metricsJob, database); err != nil {
		log.Error("Cannot push run metrics", "error", err)
		return
	}
	log.Debug("Run metrics pushed", "url", url)
}
