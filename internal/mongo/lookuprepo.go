package mongo

import (
	"context"
	"fmt"
	"regexp"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/seed"
	"github.com/appetiteclub/resolookups/internal/config"
	"github.com/appetiteclub/resolookups/internal/lookup"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var credentials = regexp.MustCompile(`:[^/]+@`)

// LookupRepo reads and appends RESO lookup values in MongoDB.
type LookupRepo struct {
	url        string
	database   string
	client     *apt.MongoClient
	collection *mongo.Collection
	tracker    *seed.MongoTracker
	logger     apt.Logger
}

// NewLookupRepo creates a repository for the configured database. Start must
// be called before use.
func NewLookupRepo(cfg *apt.Config, log apt.Logger) *LookupRepo {
	if log == nil {
		log = apt.NewNoopLogger()
	}
	return &LookupRepo{
		url:      cfg.GetStringOrDef(config.KeyMongoURL, config.DefaultMongoURL),
		database: cfg.GetStringOrDef(config.KeyMongoDatabase, config.DefaultMongoDatabase),
		logger:   log,
	}
}

// URL returns the connection URI with credentials masked.
func (r *LookupRepo) URL() string {
	return MaskURI(r.url)
}

// Database returns the target database name.
func (r *LookupRepo) Database() string {
	return r.database
}

// Start connects to MongoDB and verifies the server is reachable. The
// connection attempt is bounded by apt's default connect timeout.
func (r *LookupRepo) Start(ctx context.Context) error {
	client, err := apt.NewMongoClient(ctx, apt.MongoConfig{
		URI:      r.url,
		Database: r.database,
	})
	if err != nil {
		return fmt.Errorf("connect to mongodb: %w", err)
	}

	r.client = client
	r.collection = client.Collection(lookup.CollectionName)
	r.tracker = seed.NewMongoTracker(r.collection.Database())

	r.logger.Info("Connected to MongoDB", "url", r.URL(), "database", r.database)
	return nil
}

// Stop releases the connection. Calling it more than once is a no-op.
func (r *LookupRepo) Stop(ctx context.Context) error {
	if r.client == nil {
		return nil
	}

	err := r.client.Disconnect(ctx)
	r.client = nil
	r.collection = nil
	r.tracker = nil
	if err != nil {
		return fmt.Errorf("disconnect from mongodb: %w", err)
	}

	r.logger.Debug("Disconnected from MongoDB")
	return nil
}

// CountByName returns how many lookup values exist for name.
func (r *LookupRepo) CountByName(ctx context.Context, name string) (int64, error) {
	if r.collection == nil {
		return 0, fmt.Errorf("lookup repository is not started")
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"LookupName": name})
	if err != nil {
		return 0, fmt.Errorf("count lookups for %s: %w", name, err)
	}
	return count, nil
}

// InsertMany appends lookups in a single batch and returns how many were
// inserted.
func (r *LookupRepo) InsertMany(ctx context.Context, lookups []lookup.Lookup) (int, error) {
	if r.collection == nil {
		return 0, fmt.Errorf("lookup repository is not started")
	}
	if len(lookups) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(lookups))
	for _, l := range lookups {
		docs = append(docs, l)
	}

	result, err := r.collection.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert lookups: %w", err)
	}
	return len(result.InsertedIDs), nil
}

// ListByName returns the lookup values for name sorted by value, or every
// lookup value sorted by name and value when name is empty.
func (r *LookupRepo) ListByName(ctx context.Context, name string) ([]lookup.Lookup, error) {
	if r.collection == nil {
		return nil, fmt.Errorf("lookup repository is not started")
	}

	filter := bson.M{}
	if name != "" {
		filter["LookupName"] = name
	}
	opts := options.Find().SetSort(bson.D{
		{Key: "LookupName", Value: 1},
		{Key: "LookupValue", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("could not list lookups: %w", err)
	}
	defer cursor.Close(ctx)

	var lookups []lookup.Lookup
	for cursor.Next(ctx) {
		var l lookup.Lookup
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("could not decode lookup: %w", err)
		}
		lookups = append(lookups, l)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return lookups, nil
}

// MarkRun records a seeding batch in the _seeds collection.
func (r *LookupRepo) MarkRun(ctx context.Context, record seed.Record) error {
	if r.tracker == nil {
		return fmt.Errorf("lookup repository is not started")
	}
	return r.tracker.MarkRun(ctx, record)
}

// MaskURI hides the password part of a connection URI.
func MaskURI(uri string) string {
	return credentials.ReplaceAllString(uri, ":****@")
}
