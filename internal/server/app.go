// Package server wires storage, services and the gRPC command surface of
// BoardKeeper and runs them until the process is signalled.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/boardkeeper/internal/logging"
	"github.com/dmitrijs2005/boardkeeper/internal/server/config"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/boardkeeper/internal/server/services"
	"github.com/dmitrijs2005/boardkeeper/internal/server/store"

	gs "github.com/dmitrijs2005/boardkeeper/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	store          *store.Store
	userService    *services.UserService
	boardService   *services.BoardService
	datasetService *services.DatasetService
	exportService  *services.ExportService
}

// NewApp opens the database named by c, brings its schema up to date and
// builds the services on top of it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	st, err := store.Open(ctx, c.DatabaseDSN, c.MaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewSQLRepositoryManager(st.Dialect())
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("repository manager init error: %w", err)
	}

	if err := rm.RunMigrations(ctx, st.DB()); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	logger.Info(ctx, "Storage ready", "driver", st.Driver())

	opts := []services.Option{services.WithLogger(logger)}
	ds := services.NewDatasetService(st.DB(), rm, opts...)
	bs := services.NewBoardService(st.DB(), rm, ds, opts...)

	return &App{
		config:         c,
		logger:         logger,
		store:          st,
		userService:    services.NewUserService(st.DB(), rm, c, opts...),
		boardService:   bs,
		datasetService: ds,
		exportService:  services.NewExportService(bs, c, opts...),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves gRPC until a signal arrives or ctx is cancelled, then closes
// the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.config.RequestTimeout,
		app.userService, app.boardService, app.datasetService, app.exportService)

	runErr := s.Run(ctx)
	if runErr != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", runErr)
	}

	if err := app.store.Close(); err != nil {
		app.logger.Error(context.Background(), "closing database", "error", err)
	}

	app.logger.Info(context.Background(), "App stopped")
	return runErr
}
