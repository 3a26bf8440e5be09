package seeding

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReporterInserted(t *testing.T) {
	var out bytes.Buffer
	plan := &Plan{Created: []FieldValues{
		{Name: "Roof", Values: []string{"Shingle", "Tile", "Metal"}},
		{Name: "View", Values: []string{"Water", "Mountain", "City"}},
	}}

	NewReporter(&out).Inserted(6, plan)

	want := []string{
		"Success! Inserted 6 lookup values.",
		"Roof: Shingle, Tile, Metal\n",
		"View: Water, Mountain, City\n",
		"db.lookup.find({LookupName: 'Roof'}).pretty()",
	}
	for _, w := range want {
		if !strings.Contains(out.String(), w) {
			t.Errorf("output missing %q:\n%s", w, out.String())
		}
	}
}

func TestReporterLines(t *testing.T) {
	tests := []struct {
		name  string
		write func(r *Reporter)
		want  string
	}{
		{name: "done", write: func(r *Reporter) { r.Done() }, want: "\nMongoDB connection closed. Script complete.\n"},
		{name: "cancelled", write: func(r *Reporter) { r.Cancelled() }, want: "\nInsertion canceled by user.\n"},
		{name: "insertFailed", write: func(r *Reporter) { r.InsertFailed(errors.New("boom")) }, want: "\nError inserting lookup values: boom\n"},
		{name: "skipped", write: func(r *Reporter) { r.Skipped("Roof", 4) }, want: "Field 'Roof' already exists with 4 values. Skipping.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			tt.write(NewReporter(&out))
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestNilReporterWriterDiscards(t *testing.T) {
	NewReporter(nil).Done()
}
