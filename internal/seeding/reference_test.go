package seeding

import (
	"testing"
)

func TestFieldNames(t *testing.T) {
	names := FieldNames()
	if len(names) != 153 {
		t.Errorf("len(FieldNames()) = %d, want 153", len(names))
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			t.Errorf("FieldNames() lists %q twice", name)
		}
		seen[name] = true
		if !HasReference(name) {
			t.Errorf("field %q has no reference values", name)
		}
	}
}

func TestFieldNamesReturnsCopy(t *testing.T) {
	names := FieldNames()
	first := names[0]
	names[0] = "Mutated"

	if got := FieldNames()[0]; got != first {
		t.Errorf("FieldNames()[0] = %q after mutating a copy, want %q", got, first)
	}
}

func TestValuesFor(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  [3]string
	}{
		{name: "roof", field: "Roof", want: [3]string{"Shingle", "Tile", "Metal"}},
		{name: "heating", field: "Heating", want: [3]string{"Forced Air", "Radiant", "Baseboard"}},
		{name: "edmString", field: "Edm.String", want: [3]string{"String1", "String2", "String3"}},
		{name: "streetDirection", field: "StreetDirection", want: [3]string{"N", "S", "E"}},
		{name: "unknownFallsBack", field: "NotARealField", want: [3]string{"Value1", "Value2", "Value3"}},
		{name: "emptyFallsBack", field: "", want: [3]string{"Value1", "Value2", "Value3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValuesFor(tt.field); got != tt.want {
				t.Errorf("ValuesFor(%q) = %v, want %v", tt.field, got, tt.want)
			}
		})
	}
}

func TestReferenceValuesAreNonEmpty(t *testing.T) {
	for name, values := range referenceValues {
		for i, v := range values {
			if v == "" {
				t.Errorf("referenceValues[%q][%d] is empty", name, i)
			}
		}
	}
}
