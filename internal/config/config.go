package config

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/common/errs"
	dot721config "github.com/gaze-network/dot721-indexer/modules/dot721/config"
	"github.com/gaze-network/dot721-indexer/pkg/logger"
	"github.com/gaze-network/dot721-indexer/pkg/logger/slogx"
	"github.com/gaze-network/dot721-indexer/pkg/middleware/requestlogger"
	"github.com/gaze-network/dot721-indexer/pkg/ss58"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	mu     sync.RWMutex
	parsed bool
	config = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
	}
)

type Config struct {
	Logger     logger.Config    `mapstructure:"logger"`
	HTTPServer HTTPServerConfig `mapstructure:"http_server"`
	Chain      ChainConfig      `mapstructure:"chain"`
	Scan       ScanConfig       `mapstructure:"scan"`
	IPFS       IPFSConfig       `mapstructure:"ipfs"`
	Modules    Modules          `mapstructure:"modules"`
	APIOnly    bool             `mapstructure:"api_only"`
}

type HTTPServerConfig struct {
	Port   int                  `mapstructure:"port"`
	Logger requestlogger.Config `mapstructure:"logger"`
}

type ChainConfig struct {
	// Endpoint is the base url of the Substrate API Sidecar serving the chain.
	Endpoint   string        `mapstructure:"endpoint"`
	SS58Prefix uint16        `mapstructure:"ss58_prefix"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type ScanConfig struct {
	StartBlock    int64         `mapstructure:"start_block"`
	Concurrency   int           `mapstructure:"concurrency"`
	WaitInterval  time.Duration `mapstructure:"wait_interval"`
	RetryInterval time.Duration `mapstructure:"retry_interval"`
}

type IPFSConfig struct {
	Gateway string `mapstructure:"gateway"`
}

type Modules struct {
	DOT721 dot721config.Config `mapstructure:"dot721"`
}

var defaults = map[string]any{
	"logger.output":                     "text",
	"logger.debug":                      false,
	"http_server.port":                  8080,
	"http_server.logger.disable":        false,
	"http_server.logger.request_query":  false,
	"chain.endpoint":                    "",
	"chain.ss58_prefix":                 0,
	"chain.timeout":                     30 * time.Second,
	"scan.start_block":                  0,
	"scan.concurrency":                  1,
	"scan.wait_interval":                6 * time.Second,
	"scan.retry_interval":               3 * time.Second,
	"ipfs.gateway":                      "https://ipfs.io/ipfs/",
	"api_only":                          false,
	"modules.dot721.commit_timeout":     2 * time.Minute,
	"modules.dot721.metadata_timeout":   30 * time.Second,
	"modules.dot721.postgres.host":      "",
	"modules.dot721.postgres.port":      "",
	"modules.dot721.postgres.user":      "",
	"modules.dot721.postgres.password":  "",
	"modules.dot721.postgres.db_name":   "",
	"modules.dot721.postgres.ssl_mode":  "",
	"modules.dot721.postgres.url":       "",
	"modules.dot721.postgres.max_conns": 0,
	"modules.dot721.postgres.min_conns": 0,
	"modules.dot721.postgres.debug":     false,
}

// Parse parses the configuration from the given config file (optional) and
// environment variables, e.g. `CHAIN_ENDPOINT` for `chain.endpoint`.
func Parse(configFile ...string) Config {
	ctx := logger.WithContext(context.Background(), slogx.String("package", "config"))

	mu.Lock()
	defer mu.Unlock()

	if len(configFile) > 0 && configFile[0] != "" {
		viper.SetConfigFile(configFile[0])
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var errNotfound viper.ConfigFileNotFoundError
		if errors.As(err, &errNotfound) {
			logger.WarnContext(ctx, "Config file not found, use default value", slogx.Error(err))
		} else {
			logger.PanicContext(ctx, "Invalid config file", slogx.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		logger.PanicContext(ctx, "Failed to unmarshal config", slogx.Error(err))
	}

	parsed = true
	logger.DebugContext(ctx, "Loaded config successfully")
	return *config
}

// Load returns the parsed configuration, parsing it first if needed.
func Load() Config {
	mu.RLock()
	if parsed {
		defer mu.RUnlock()
		return *config
	}
	mu.RUnlock()
	return Parse()
}

// BindPFlag binds a specific key to a pflag (as used by cobra).
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Something went wrong, failed to bind flag for config", slogx.String("package", "config"), slogx.Error(err))
	}
}

// Validate checks the values required to run the indexer.
func (c Config) Validate() error {
	if c.Chain.Endpoint == "" {
		return errors.Wrap(errs.InvalidArgument, "chain.endpoint is required")
	}
	if c.Chain.SS58Prefix > ss58.MaxPrefix {
		return errors.Wrapf(errs.InvalidArgument, "chain.ss58_prefix must not exceed %d", ss58.MaxPrefix)
	}
	if c.Scan.StartBlock < 0 {
		return errors.Wrap(errs.InvalidArgument, "scan.start_block must not be negative")
	}
	if c.Scan.Concurrency < 1 {
		return errors.Wrap(errs.InvalidArgument, "scan.concurrency must be at least 1")
	}
	if c.IPFS.Gateway == "" {
		return errors.Wrap(errs.InvalidArgument, "ipfs.gateway is required")
	}
	return nil
}
