package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/core/indexer"
	"github.com/gaze-network/dot721-indexer/internal/config"
	"github.com/gaze-network/dot721-indexer/modules/dot721"
	"github.com/gaze-network/dot721-indexer/pkg/automaxprocs"
	"github.com/gaze-network/dot721-indexer/pkg/errorhandler"
	"github.com/gaze-network/dot721-indexer/pkg/logger"
	"github.com/gaze-network/dot721-indexer/pkg/logger/slogx"
	"github.com/gaze-network/dot721-indexer/pkg/middleware/requestcontext"
	"github.com/gaze-network/dot721-indexer/pkg/middleware/requestlogger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const dot721Module = "dot721"

// Register Modules
var Modules = do.Package(
	do.LazyNamed(dot721Module, dot721.New),
)

func NewRunCommand() *cobra.Command {
	// Create command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start dot721 indexer service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := automaxprocs.Init(); err != nil {
				logger.Error("Failed to set GOMAXPROCS", slogx.Error(err))
			}
			return runHandler(cmd, args)
		},
	}

	// Add local flags
	flags := runCmd.Flags()
	flags.Bool("api-only", false, "Run only API server")
	flags.Int64("start-block", 0, "Block height to start indexing from when nothing has been indexed yet")

	// Bind flags to configuration
	config.BindPFlag("api_only", flags.Lookup("api-only"))
	config.BindPFlag("scan.start_block", flags.Lookup("start-block"))

	return runCmd
}

const (
	shutdownTimeout = 60 * time.Second
)

func runHandler(cmd *cobra.Command, _ []string) error {
	conf := config.Load()

	// Validate inputs and configurations
	if err := conf.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	// Initialize application process context
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := do.New(Modules)
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)

	// Initialize HTTP server
	do.Provide(injector, func(i do.Injector) (*fiber.App, error) {
		app := fiber.New(fiber.Config{
			AppName:      "DOT-721 Indexer",
			ErrorHandler: errorhandler.NewHTTPErrorHandler(),
		})
		app.
			Use(favicon.New()).
			Use(cors.New()).
			Use(requestid.New()).
			Use(requestcontext.New(
				requestcontext.WithRequestID(),
			)).
			Use(requestlogger.New(conf.HTTPServer.Logger)).
			Use(fiberrecover.New(fiberrecover.Config{
				EnableStackTrace: true,
				StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
					buf := make([]byte, 1024) // bufLen = 1024
					buf = buf[:runtime.Stack(buf, false)]
					logger.ErrorContext(c.UserContext(), "Something went wrong, panic in http handler", slogx.Any("panic", e), slog.String("stacktrace", string(buf)))
				},
			})).
			Use(compress.New(compress.Config{
				Level: compress.LevelDefault,
			}))

		// Health check
		app.Get("/", func(c *fiber.Ctx) error {
			return errors.WithStack(c.SendStatus(http.StatusOK))
		})
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

		return app, nil
	})

	// Initialize worker context to separate worker's lifecycle from main process
	ctxWorker, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	// Add logger context
	ctxWorker = logger.WithContext(ctxWorker, slogx.String("module", dot721Module))

	// Run module
	worker, err := do.InvokeNamed[indexer.IndexerWorker](injector, dot721Module)
	if err != nil {
		return errors.Wrapf(err, "can't init module %q", dot721Module)
	}
	if !conf.APIOnly {
		go func() {
			// stop main process if indexer stopped
			defer stop()

			logger.InfoContext(ctxWorker, "Starting DOT-721 Indexer")
			if err := worker.Run(ctxWorker); err != nil {
				logger.ErrorContext(ctxWorker, "Something went wrong, error during running indexer", slogx.Error(err))
			}
		}()
	}

	// Run API server
	httpServer := do.MustInvoke[*fiber.App](injector)
	go func() {
		// stop main process if API stopped
		defer stop()

		logger.InfoContext(ctx, "Started HTTP server", slog.Int("port", conf.HTTPServer.Port))
		if err := httpServer.Listen(fmt.Sprintf(":%d", conf.HTTPServer.Port)); err != nil {
			logger.ErrorContext(ctx, "Something went wrong, error during running HTTP server", slogx.Error(err))
		}
	}()

	logger.InfoContext(ctxWorker, "DOT-721 Indexer started")

	// Wait for interrupt signal to gracefully stop the server
	<-ctx.Done()

	// Force shutdown if timeout exceeded or got signal again
	go func() {
		defer os.Exit(1)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case <-ctx.Done():
			logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
		case <-time.After(shutdownTimeout + 15*time.Second):
			logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
		}
	}()

	// stop the HTTP server and the indexer together, module resources are released afterwards
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	var eg errgroup.Group
	eg.Go(func() error {
		return errors.Wrap(httpServer.ShutdownWithContext(shutdownCtx), "failed to shutdown HTTP server")
	})
	eg.Go(func() error {
		return errors.Wrap(worker.ShutdownWithContext(shutdownCtx), "failed to stop indexer")
	})
	if err := eg.Wait(); err != nil {
		logger.ErrorContext(ctx, "Failed while stopping services", slogx.Error(err))
	}
	stopWorker()
	if err := injector.Shutdown(); err != nil {
		logger.PanicContext(ctx, "Failed while gracefully shutting down", slogx.Error(err))
	}

	return nil
}
