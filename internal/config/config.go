package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/appetiteclub/apt"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/spf13/pflag"
)

// Keys understood by the tool.
const (
	KeyMongoURL       = "mongo.url"
	KeyMongoDatabase  = "mongo.database"
	KeySeedAuto       = "seed.auto"
	KeySeedTrack      = "seed.track"
	KeyLogLevel       = "log.level"
	KeyPushgatewayURL = "metrics.pushgateway"
	KeyNATSURL        = "nats.url"
	KeyListName       = "list.name"
)

const (
	DefaultMongoURL      = "mongodb://localhost:27017/"
	DefaultMongoDatabase = "reso"
	DefaultLogLevel      = "info"
)

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"mongo-uri":   KeyMongoURL,
	"db-name":     KeyMongoDatabase,
	"auto":        KeySeedAuto,
	"track":       KeySeedTrack,
	"log-level":   KeyLogLevel,
	"pushgateway": KeyPushgatewayURL,
	"nats-url":    KeyNATSURL,
	"name":        KeyListName,
}

func defaults() map[string]any {
	return map[string]any{
		KeyMongoURL:      DefaultMongoURL,
		KeyMongoDatabase: DefaultMongoDatabase,
		KeySeedAuto:      false,
		KeySeedTrack:     false,
		KeyLogLevel:      DefaultLogLevel,
	}
}

// New returns a config holding the defaults overridden by values.
func New(values map[string]any) *apt.Config {
	cfg := apt.NewConfig()
	cfg.MergeFlat(defaults())
	cfg.MergeFlat(values)
	return cfg
}

// Load resolves the configuration for namespace. Later sources win:
// defaults, config.yaml found by apt, the file given with --config, a .env
// file, NAMESPACE_* environment variables and command line flags.
//
// Flags are validated first; --help yields an error matching pflag.ErrHelp.
func Load(namespace string, args []string) (*apt.Config, error) {
	fs := newFlagSet(namespace)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("cannot parse flags: %w", err)
	}

	_ = godotenv.Load()

	cfg := New(nil)
	if err := cfg.LoadSources(namespace, args); err != nil {
		return nil, err
	}

	if path, _ := fs.GetString("config"); path != "" {
		prefix := strings.ToUpper(strings.TrimSuffix(namespace, "_")) + "_"
		if err := cfg.MergeYAMLFileWithEnv(path, prefix); err != nil {
			return nil, fmt.Errorf("cannot load config file %s: %w", path, err)
		}
	}

	fs.Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			cfg.Set(key, posflag.FlagVal(fs, f))
		}
	})

	return cfg, nil
}

func newFlagSet(namespace string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(strings.ToLower(namespace), pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.String("config", "", "path to a YAML config file")
	fs.String("mongo-uri", DefaultMongoURL, "MongoDB connection URI")
	fs.String("db-name", DefaultMongoDatabase, "database name")
	fs.Bool("auto", false, "insert without asking for confirmation")
	fs.Bool("track", false, "record each inserted batch in the _seeds collection")
	fs.String("log-level", DefaultLogLevel, "log level: debug, info, error")
	fs.String("pushgateway", "", "Prometheus Pushgateway URL for run metrics")
	fs.String("nats-url", "", "NATS URL for the lookups seeded event")
	fs.String("name", "", "lookup name to list (list command)")
	return fs
}

// Optional returns the value for key, or "" when it is unset or blank.
func Optional(cfg *apt.Config, key string) string {
	return strings.TrimSpace(cfg.GetStringOrDef(key, ""))
}
