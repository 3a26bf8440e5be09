package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/appetiteclub/resolookups/internal/commands"
	"github.com/appetiteclub/resolookups/internal/config"
	"github.com/appetiteclub/resolookups/internal/logger"
	"github.com/spf13/pflag"
)

const (
	appNamespace = "LOOKUPS"
	appName      = "lookupseed"
	appVersion   = "0.1.0"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version":
		fmt.Printf("%s version %s\n", appName, appVersion)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "fields":
		commands.PrintFields(os.Stdout)
		return
	}

	cfg, err := config.Load(appNamespace, os.Args[2:])
	if errors.Is(err, pflag.ErrHelp) {
		printUsage()
		return
	}
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	logLevel := cfg.GetStringOrDef(config.KeyLogLevel, config.DefaultLogLevel)
	appLogger := logger.New(logLevel)
	ctx := context.Background()

	switch command {
	case "seed":
		err = commands.SeedLookups(ctx, cfg, appLogger, os.Stdin, os.Stdout)
	case "list":
		err = commands.ListLookups(ctx, cfg, appLogger, os.Stdout)
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync(appLogger)
	if err != nil {
		log.Fatalf("%s %s failed: %v", appName, command, err)
	}
}

func printUsage() {
	fmt.Printf(`%s - RESO lookup reference data

Usage:
  %s <command> [options]

Commands:
  seed       Add reference values for lookup fields missing from the lookup collection
  list       Print stored lookup values grouped by name
  fields     Print the built-in field list and reference values
  version    Print version information
  help       Show this help message

Options:
  --auto               Insert without asking for confirmation
  --track              Record each inserted batch in the _seeds collection
  --mongo-uri string   MongoDB connection URI (default: mongodb://localhost:27017/)
  --db-name string     Database name (default: reso)
  --name string        Lookup name to list (list only)
  --config string      YAML config file (config.yaml is picked up when present)
  --log-level string   Log level: debug, info, error (default: info)
  --pushgateway string Prometheus Pushgateway URL for run metrics
  --nats-url string    NATS URL for the lookups seeded event

Environment Variables:
  LOOKUPS_MONGO_URL            MongoDB connection URI
  LOOKUPS_MONGO_DATABASE       Database name
  LOOKUPS_SEED_AUTO            true to skip the confirmation prompt
  LOOKUPS_SEED_TRACK           true to record batches in _seeds
  LOOKUPS_LOG_LEVEL            Log level
  LOOKUPS_METRICS_PUSHGATEWAY  Prometheus Pushgateway URL
  LOOKUPS_NATS_URL             NATS URL

Examples:
  %s seed
  %s seed --auto --db-name reso
  LOOKUPS_MONGO_URL=mongodb://localhost:27017 %s list --name Roof

`, appName, appName, appName, appName, appName)
}
