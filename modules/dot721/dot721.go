package dot721

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/core/datasources"
	"github.com/gaze-network/dot721-indexer/core/indexer"
	"github.com/gaze-network/dot721-indexer/internal/config"
	"github.com/gaze-network/dot721-indexer/internal/postgres"
	"github.com/gaze-network/dot721-indexer/modules/dot721/api/httphandler"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/metadata"
	"github.com/gaze-network/dot721-indexer/modules/dot721/internal/protocol"
	repository "github.com/gaze-network/dot721-indexer/modules/dot721/repository/postgres"
	"github.com/gaze-network/dot721-indexer/pkg/logger"
	"github.com/gaze-network/dot721-indexer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
)

const Version = "v0.1.0"

func New(injector do.Injector) (indexer.IndexerWorker, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)

	pg, err := postgres.NewPool(ctx, conf.Modules.DOT721.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "can't create postgres connection pool")
	}
	var cleanupFuncs []func(context.Context) error
	cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
		pg.Close()
		return nil
	})
	repo := repository.NewRepository(pg)

	fetcher, err := metadata.NewHTTPFetcher(conf.Modules.DOT721.MetadataTimeout)
	if err != nil {
		return nil, errors.Wrap(err, "can't create metadata fetcher")
	}
	resolver := metadata.NewResolver(fetcher, conf.IPFS.Gateway, conf.Modules.DOT721.MetadataTimeout)

	processor := NewProcessor(repo,
		resolver,
		protocol.NewParser(conf.Chain.SS58Prefix),
		conf.Modules.DOT721.CommitTimeout,
		cleanupFuncs,
	)
	datasource := datasources.NewSidecar(conf.Chain.Endpoint, conf.Chain.Timeout)
	scanner := indexer.New(processor, datasource, indexer.Config{
		StartBlock:    conf.Scan.StartBlock,
		Concurrency:   conf.Scan.Concurrency,
		WaitInterval:  conf.Scan.WaitInterval,
		RetryInterval: conf.Scan.RetryInterval,
	})

	httpServer := do.MustInvoke[*fiber.App](injector)
	if err := httphandler.New(repo, scanner).Mount(httpServer); err != nil {
		return nil, errors.Wrap(err, "can't mount dot721 API")
	}
	logger.InfoContext(ctx, "Mounted dot721 HTTP handler")

	logger.InfoContext(ctx, "dot721 module started",
		slogx.String("version", Version),
		slogx.String("chain_endpoint", conf.Chain.Endpoint),
		slogx.Int64("start_block", conf.Scan.StartBlock),
	)
	return scanner, nil
}
