package seeding

import (
	"github.com/appetiteclub/resolookups/internal/lookup"
)

// FieldValues lists the values created for one lookup field.
type FieldValues struct {
	Name   string
	Values []string
}

// SkippedField is a field left alone because the store already has values for it.
type SkippedField struct {
	Name     string
	Existing int64
}

// Plan is the outcome of the existence check: the records to insert and the
// fields they belong to, in processing order.
type Plan struct {
	Records []lookup.Lookup
	Created []FieldValues
	Skipped []SkippedField
}

// Empty reports whether there is nothing to insert.
func (p *Plan) Empty() bool {
	return p == nil || len(p.Records) == 0
}

// FieldNames returns the names of the fields that will be created.
func (p *Plan) FieldNames() []string {
	names := make([]string, 0, len(p.Created))
	for _, f := range p.Created {
		names = append(names, f.Name)
	}
	return names
}

// SampleField returns a created field suitable for a verification query.
func (p *Plan) SampleField() string {
	if p == nil || len(p.Created) == 0 {
		return ""
	}
	return p.Created[0].Name
}

func (p *Plan) add(name string, records []lookup.Lookup) {
	values := make([]string, 0, len(records))
	for _, r := range records {
		values = append(values, r.LookupValue)
	}
	p.Records = append(p.Records, records...)
	p.Created = append(p.Created, FieldValues{Name: name, Values: values})
}

func (p *Plan) skip(name string, existing int64) {
	p.Skipped = append(p.Skipped, SkippedField{Name: name, Existing: existing})
}
