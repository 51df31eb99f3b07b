package config

import (
	"time"

	"github.com/gaze-network/dot721-indexer/internal/postgres"
)

type Config struct {
	Postgres postgres.Config `mapstructure:"postgres"`

	// CommitTimeout bounds the handling of a single inscription,
	// including its metadata fetch and database transaction.
	CommitTimeout time.Duration `mapstructure:"commit_timeout"`

	// MetadataTimeout bounds a single metadata request.
	MetadataTimeout time.Duration `mapstructure:"metadata_timeout"`
}
