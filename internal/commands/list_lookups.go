package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/resolookups/internal/config"
	"github.com/appetiteclub/resolookups/internal/lookup"
	"github.com/appetiteclub/resolookups/internal/mongo"
)

// ListLookups prints the stored lookup values grouped by name. The list.name
// setting narrows the output to a single lookup.
func ListLookups(ctx context.Context, cfg *apt.Config, log apt.Logger, out io.Writer) error {
	repo := mongo.NewLookupRepo(cfg, log)
	if err := repo.Start(ctx); err != nil {
		return err
	}
	defer repo.Stop(ctx)

	name := config.Optional(cfg, config.KeyListName)
	lookups, err := repo.ListByName(ctx, name)
	if err != nil {
		return fmt.Errorf("list lookups: %w", err)
	}

	cache := lookup.NewCache(lookups)
	writeCache(out, cache)
	log.Info("Listed lookups", "names", len(cache.Names()), "values", cache.Len())
	return nil
}

func writeCache(out io.Writer, cache *lookup.Cache) {
	names := cache.Names()
	if len(names) == 0 {
		fmt.Fprintln(out, "No lookup values found.")
		return
	}

	for _, name := range names {
		entries := cache.Entries(name)
		fmt.Fprintf(out, "%s (%d)\n", name, len(entries))
		for _, e := range entries {
			fmt.Fprintf(out, "  %-24s %-26s %s\n", e.LookupValue, e.LegacyOdataValue, e.LookupKey)
		}
	}
}
