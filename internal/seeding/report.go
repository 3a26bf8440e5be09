package seeding

import (
	"fmt"
	"io"
	"strings"

	"github.com/appetiteclub/resolookups/internal/lookup"
)

// Reporter prints the operator-facing progress and summary of a run.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = io.Discard
	}
	return &Reporter{out: out}
}

func (r *Reporter) Start(url, database string) {
	r.printf("Starting lookup seeding...\n")
	r.printf("MongoDB URI: %s\n", url)
	r.printf("Database: %s\n", database)
}

func (r *Reporter) Connected() {
	r.printf("Connected to MongoDB successfully!\n")
}

func (r *Reporter) ConnectFailed(err error) {
	r.printf("Failed to connect to MongoDB: %v\n", err)
}

func (r *Reporter) Checking() {
	r.printf("\nChecking %s collection for existing fields...\n", lookup.CollectionName)
}

func (r *Reporter) Skipped(name string, existing int64) {
	r.printf("Field '%s' already exists with %d values. Skipping.\n", name, existing)
}

func (r *Reporter) Planned(p *Plan) {
	r.printf("\n%d new fields to add with %d total lookup values.\n", len(p.Created), len(p.Records))
	r.printf("%d fields already exist in the database.\n", len(p.Skipped))
}

func (r *Reporter) NothingToDo() {
	r.printf("\nNo new lookup values to insert. All fields already exist.\n")
}

func (r *Reporter) Cancelled() {
	r.printf("\nInsertion canceled by user.\n")
}

func (r *Reporter) InsertFailed(err error) {
	r.printf("\nError inserting lookup values: %v\n", err)
}

// Inserted prints the inserted count, the values created per field and a
// query that shows one of the new fields.
func (r *Reporter) Inserted(n int, p *Plan) {
	r.printf("\nSuccess! Inserted %d lookup values.\n", n)

	r.printf("\nSummary of created lookup values:\n")
	for _, f := range p.Created {
		r.printf("%s: %s\n", f.Name, strings.Join(f.Values, ", "))
	}

	if sample := p.SampleField(); sample != "" {
		r.printf("\nTo verify one of the insertions, run this MongoDB command:\n")
		r.printf("%s\n", VerifyQuery(sample))
	}
}

// Done closes the run output once the connection is released.
func (r *Reporter) Done() {
	r.printf("\nMongoDB connection closed. Script complete.\n")
}

// VerifyQuery returns a mongo shell query listing the values of name.
func VerifyQuery(name string) string {
	return fmt.Sprintf("db.%s.find({LookupName: '%s'}).pretty()", lookup.CollectionName, name)
}

func (r *Reporter) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
