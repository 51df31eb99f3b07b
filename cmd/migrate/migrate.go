package migrate

import (
	"fmt"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"
)

const (
	dot721MigrationSource = "modules/dot721/database/postgresql/migrations"
	dot721MigrationTable  = "dot721_schema_migrations"
)

var supportedDrivers = map[string]struct{}{
	"postgres":   {},
	"postgresql": {},
}

type migrateCmdOptions struct {
	DatabaseURL string
	Source      string
}

func (opts *migrateCmdOptions) bindFlags(flags *pflag.FlagSet) {
	flags.StringVar(&opts.Source, "source", dot721MigrationSource, "Path to dot721 migrations directory")
	flags.StringVar(&opts.DatabaseURL, "database", "", "Database url to run migration on. Default is `modules.dot721.postgres.url` of the config")
}

// newMigrate creates a Migrate instance on the dot721 migrations table.
func (opts *migrateCmdOptions) newMigrate() (*migrate.Migrate, error) {
	rawURL := opts.DatabaseURL
	if rawURL == "" {
		rawURL = config.Load().Modules.DOT721.Postgres.URL
	}
	if rawURL == "" {
		return nil, errors.New("--database is required")
	}
	databaseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database URL")
	}
	if _, ok := supportedDrivers[databaseURL.Scheme]; !ok {
		return nil, errors.Errorf("unsupported database driver: %s", databaseURL.Scheme)
	}

	databaseURL = cloneURLWithQuery(databaseURL, url.Values{"x-migrations-table": {dot721MigrationTable}})
	m, err := migrate.New("file://"+opts.Source, databaseURL.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Migrate instance")
	}
	m.Log = &consoleLogger{prefix: "[dot721] "}
	return m, nil
}

func cloneURLWithQuery(u *url.URL, newQuery url.Values) *url.URL {
	clone := *u
	query := clone.Query()
	for key, values := range newQuery {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	clone.RawQuery = query.Encode()
	return &clone
}

var _ migrate.Logger = (*consoleLogger)(nil)

type consoleLogger struct {
	prefix  string
	verbose bool
}

func (l *consoleLogger) Printf(format string, v ...interface{}) {
	fmt.Printf(l.prefix+format, v...)
}

func (l *consoleLogger) Verbose() bool {
	return l.verbose
}
