package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/appetiteclub/resolookups/internal/lookup"
	"github.com/appetiteclub/resolookups/internal/seeding"
)

// PrintFields writes the seeded field list with the values each field would
// receive and their legacy labels. It does not touch the store.
func PrintFields(out io.Writer) {
	names := seeding.FieldNames()
	for _, name := range names {
		values := seeding.ValuesFor(name)
		labels := make([]string, 0, len(values))
		for _, v := range values {
			labels = append(labels, lookup.LegacyLabel(v))
		}

		marker := ""
		if !seeding.HasReference(name) {
			marker = " (placeholder)"
		}
		fmt.Fprintf(out, "%s%s: %s [%s]\n", name, marker, strings.Join(values[:], ", "), strings.Join(labels, " | "))
	}
	fmt.Fprintf(out, "\n%d fields\n", len(names))
}
