package seeding

import (
	"context"
	"fmt"

	"github.com/appetiteclub/apt/seed"
	"github.com/appetiteclub/resolookups/internal/lookup"
)

// MockStore is an in-memory lookup store.
type MockStore struct {
	byName          map[string][]lookup.Lookup
	CountCalls      []string
	InsertCalls     int
	CountByNameFunc func(ctx context.Context, name string) (int64, error)
	InsertManyFunc  func(ctx context.Context, lookups []lookup.Lookup) (int, error)
}

func NewMockStore() *MockStore {
	return &MockStore{byName: make(map[string][]lookup.Lookup)}
}

func (m *MockStore) CountByName(ctx context.Context, name string) (int64, error) {
	m.CountCalls = append(m.CountCalls, name)
	if m.CountByNameFunc != nil {
		return m.CountByNameFunc(ctx, name)
	}
	return int64(len(m.byName[name])), nil
}

func (m *MockStore) InsertMany(ctx context.Context, lookups []lookup.Lookup) (int, error) {
	m.InsertCalls++
	if m.InsertManyFunc != nil {
		return m.InsertManyFunc(ctx, lookups)
	}
	for _, l := range lookups {
		m.byName[l.LookupName] = append(m.byName[l.LookupName], l)
	}
	return len(lookups), nil
}

func (m *MockStore) Seed(name string, values ...string) {
	for i, v := range values {
		m.byName[name] = append(m.byName[name], lookup.Lookup{
			LookupKey:   fmt.Sprintf("existing-%s-%d", name, i),
			LookupName:  name,
			LookupValue: v,
		})
	}
}

func (m *MockStore) Lookups(name string) []lookup.Lookup {
	return m.byName[name]
}

func (m *MockStore) Total() int {
	n := 0
	for _, l := range m.byName {
		n += len(l)
	}
	return n
}

// MockPublisher records published messages.
type MockPublisher struct {
	Topics      []string
	Messages    [][]byte
	PublishFunc func(ctx context.Context, topic string, msg []byte) error
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, msg []byte) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, msg)
	}
	m.Topics = append(m.Topics, topic)
	m.Messages = append(m.Messages, msg)
	return nil
}

// MockTracker records seed records in memory.
type MockTracker struct {
	Records     []seed.Record
	MarkRunFunc func(ctx context.Context, record seed.Record) error
}

func (m *MockTracker) HasRun(ctx context.Context, id string) (bool, error) {
	for _, r := range m.Records {
		if r.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockTracker) MarkRun(ctx context.Context, record seed.Record) error {
	if m.MarkRunFunc != nil {
		return m.MarkRunFunc(ctx, record)
	}
	m.Records = append(m.Records, record)
	return nil
}

// sequentialKeys returns predictable, distinct keys.
func sequentialKeys() lookup.KeyFunc {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("key-%04d", n), nil
	}
}
