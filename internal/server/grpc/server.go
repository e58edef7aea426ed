package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/boardkeeper/internal/api"
	"github.com/dmitrijs2005/boardkeeper/internal/logging"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	"google.golang.org/grpc"
)

type userService interface {
	Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error)
	Login(ctx context.Context, userName, password string) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

type boardService interface {
	ListBoards(ctx context.Context, userID string) ([]models.Board, error)
	GetBoard(ctx context.Context, boardID, userID string) (*models.Board, error)
	CreateBoard(ctx context.Context, userID, title, description, icon, color string) (*models.Board, error)
	DeleteBoard(ctx context.Context, boardID, userID string) error
	CreatePanel(ctx context.Context, userID string, in models.CreatePanelInput) (*models.Panel, error)
	UpdatePanelLayout(ctx context.Context, userID, panelID string, pos models.Position, size models.Size) (*models.Panel, error)
	ActivatePanel(ctx context.Context, userID, panelID string) (*models.Panel, error)
	DeletePanel(ctx context.Context, userID, panelID string) error
}

type datasetService interface {
	ListDatasets(ctx context.Context) ([]models.GlobalDataset, error)
	GetDataset(ctx context.Context, id string) (*models.GlobalDataset, error)
	CreateDataset(ctx context.Context, name, typ string, columns []string) (*models.GlobalDataset, error)
	AddDatasetRow(ctx context.Context, datasetID string, payload models.JSON) (*models.DatasetRow, error)
	DeleteDataset(ctx context.Context, id string) error
}

type exportService interface {
	ExportBoard(ctx context.Context, boardID, userID string) (*models.BoardExport, error)
}

// GRPCServer exposes the BoardKeeper commands over gRPC with the JSON codec.
type GRPCServer struct {
	address  string
	timeout  time.Duration
	users    userService
	boards   boardService
	datasets datasetService
	exports  exportService
	logger   logging.Logger
}

var _ api.BoardKeeperServer = (*GRPCServer)(nil)

func NewGRPCServer(a string, l logging.Logger, timeout time.Duration, us userService, bs boardService, ds datasetService, es exportService) *GRPCServer {
	return &GRPCServer{
		address:  a,
		timeout:  timeout,
		logger:   logging.OrDiscard(l).With("module", "grpc_server"),
		users:    us,
		boards:   bs,
		datasets: ds,
		exports:  es,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.timeoutInterceptor))
	api.RegisterBoardKeeperServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully once ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
