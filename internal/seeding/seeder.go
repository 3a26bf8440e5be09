package seeding

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/seed"
	"github.com/appetiteclub/resolookups/internal/events"
	"github.com/appetiteclub/resolookups/internal/lookup"
	"github.com/appetiteclub/resolookups/internal/metrics"
)

// Store is the part of the lookup repository the seeder needs.
type Store interface {
	CountByName(ctx context.Context, name string) (int64, error)
	InsertMany(ctx context.Context, lookups []lookup.Lookup) (int, error)
}

// Publisher delivers encoded events.
type Publisher interface {
	Publish(ctx context.Context, topic string, msg []byte) error
}

// Outcome is how a run ended.
type Outcome int

const (
	OutcomeNothingToDo Outcome = iota
	OutcomeCancelled
	OutcomeInserted
	OutcomeInsertFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeInserted:
		return "inserted"
	case OutcomeInsertFailed:
		return "insert_failed"
	default:
		return "nothing_to_do"
	}
}

// Result summarises a run.
type Result struct {
	Plan      *Plan
	Outcome   Outcome
	Inserted  int
	InsertErr error
}

// Seeder fills the lookup collection with reference values for fields that
// have none yet.
type Seeder struct {
	store     Store
	gate      *Gate
	report    *Reporter
	keys      lookup.KeyFunc
	now       func() time.Time
	logger    apt.Logger
	metrics   *metrics.Registry
	publisher Publisher
	runID     string
	database  string
	tracker   seed.Tracker
	app       string
}

type Option func(*Seeder)

func WithKeyFunc(fn lookup.KeyFunc) Option {
	return func(s *Seeder) {
		if fn != nil {
			s.keys = fn
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Seeder) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(l apt.Logger) Option {
	return func(s *Seeder) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithMetrics(m *metrics.Registry) Option {
	return func(s *Seeder) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithPublisher announces successful batches on the lookups topic.
func WithPublisher(p Publisher, runID, database string) Option {
	return func(s *Seeder) {
		s.publisher = p
		s.runID = runID
		s.database = database
	}
}

// WithTracker records every inserted batch with tracker under application.
// The record ID is derived from the run ID set by WithPublisher or WithRunID.
func WithTracker(tracker seed.Tracker, application string) Option {
	return func(s *Seeder) {
		s.tracker = tracker
		s.app = application
	}
}

// WithRunID sets the identifier used in events and seed records.
func WithRunID(runID string) Option {
	return func(s *Seeder) {
		s.runID = runID
	}
}

func NewSeeder(store Store, gate *Gate, report *Reporter, opts ...Option) *Seeder {
	s := &Seeder{
		store:   store,
		gate:    gate,
		report:  report,
		keys:    lookup.NewKey,
		now:     time.Now,
		logger:  apt.NewNoopLogger(),
		metrics: metrics.NewRegistry(),
	}
	if s.gate == nil {
		s.gate = NewGate(false, nil, nil)
	}
	if s.report == nil {
		s.report = NewReporter(nil)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run checks every field in names, builds the missing lookups and inserts
// them in one batch once the gate approves. The returned error is set only
// when the store cannot be read; a failed insert is reported in the Result.
func (s *Seeder) Run(ctx context.Context, names []string) (*Result, error) {
	plan, err := s.Plan(ctx, names)
	if err != nil {
		return nil, err
	}

	result := &Result{Plan: plan, Outcome: OutcomeNothingToDo}
	if plan.Empty() {
		s.report.NothingToDo()
		s.logger.Info("No new lookup values to insert")
		return result, nil
	}

	if s.gate.Confirm() != Approved {
		result.Outcome = OutcomeCancelled
		s.metrics.Cancelled.Inc()
		s.report.Cancelled()
		s.logger.Info("Insertion canceled", "pending", len(plan.Records))
		return result, nil
	}

	n, err := s.store.InsertMany(ctx, plan.Records)
	if err != nil {
		result.Outcome = OutcomeInsertFailed
		result.InsertErr = err
		s.metrics.InsertFailures.Inc()
		s.report.InsertFailed(err)
		s.logger.Error("Cannot insert lookup values", "records", len(plan.Records), "error", err)
		return result, nil
	}

	result.Outcome = OutcomeInserted
	result.Inserted = n
	s.metrics.RecordsInserted.Add(float64(n))
	s.metrics.LastSuccess.SetToCurrentTime()
	s.report.Inserted(n, plan)
	s.logger.Info("Lookup values inserted", "count", n, "fields", len(plan.Created))

	s.announce(ctx, plan, n)
	s.track(ctx, plan, n)
	return result, nil
}

// Plan runs the existence check for each field and synthesizes three lookups
// for every field the store does not know yet. A name repeated in names is
// only considered once.
func (s *Seeder) Plan(ctx context.Context, names []string) (*Plan, error) {
	s.report.Checking()

	plan := &Plan{}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			s.logger.Debug("Field listed twice, ignoring repeat", "field", name)
			continue
		}
		seen[name] = struct{}{}

		existing, err := s.store.CountByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("check field %s: %w", name, err)
		}
		s.metrics.FieldsChecked.Inc()

		if existing > 0 {
			plan.skip(name, existing)
			s.metrics.FieldsSkipped.Inc()
			s.report.Skipped(name, existing)
			s.logger.Debug("Field already seeded", "field", name, "existing", existing)
			continue
		}

		records, err := s.build(name)
		if err != nil {
			return nil, err
		}
		plan.add(name, records)
		s.metrics.RecordsSynthesized.Add(float64(len(records)))
	}

	s.report.Planned(plan)
	return plan, nil
}

func (s *Seeder) build(name string) ([]lookup.Lookup, error) {
	values := ValuesFor(name)
	records := make([]lookup.Lookup, 0, len(values))
	for _, value := range values {
		key, err := s.keys()
		if err != nil {
			return nil, fmt.Errorf("build lookup %s/%s: %w", name, value, err)
		}
		records = append(records, lookup.New(key, name, value, s.now()))
	}
	return records, nil
}

func (s *Seeder) announce(ctx context.Context, plan *Plan, inserted int) {
	if s.publisher == nil {
		return
	}

	evt := events.LookupsSeededEvent{
		EventType:  events.EventLookupsSeeded,
		OccurredAt: s.now(),
		RunID:      s.runID,
		Database:   s.database,
		Fields:     plan.FieldNames(),
		Inserted:   inserted,
	}
	msg, err := json.Marshal(evt)
	if err != nil {
		s.logger.Error("Cannot encode lookups seeded event", "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, events.LookupsTopic, msg); err != nil {
		s.logger.Error("Cannot publish lookups seeded event", "error", err)
	}
}

// RecordID returns the seed record ID for a run.
func RecordID(runID string) string {
	return "reso-lookups-" + runID
}

func (s *Seeder) track(ctx context.Context, plan *Plan, inserted int) {
	if s.tracker == nil {
		return
	}

	record := seed.Record{
		ID:          RecordID(s.runID),
		Application: s.app,
		Description: fmt.Sprintf("Inserted %d lookup values for %d fields", inserted, len(plan.Created)),
		AppliedAt:   s.now().UTC(),
	}
	if err := s.tracker.MarkRun(ctx, record); err != nil {
		s.logger.Error("Cannot record seeding batch", "id", record.ID, "error", err)
	}
}
