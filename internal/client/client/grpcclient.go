// Package client is the CLI's connection to the BoardKeeper server.
package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/boardkeeper/internal/api"
	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

type GRPCClient struct {
	conn    *grpc.ClientConn
	api     *api.BoardKeeperClient
	timeout time.Duration
	token   string
}

func withToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.TokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

// callInterceptor attaches the session token and bounds the call by the
// configured timeout.
func (c *GRPCClient) callInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if c.token != "" {
		ctx = withToken(ctx, c.token)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// New connects lazily to endpoint; no I/O happens until the first call.
func New(endpoint string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{timeout: timeout}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.callInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpoint, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.api = api.NewBoardKeeperClient(conn)
	return c, nil
}

// SetToken sets the token echoed in the metadata of every later call.
func (c *GRPCClient) SetToken(token string) {
	c.token = token
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error) {
	resp, err := c.api.Register(ctx, &api.RegisterRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	c.token = resp.Token
	return resp, nil
}

func (c *GRPCClient) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	resp, err := c.api.Login(ctx, &api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	c.token = resp.Token
	return resp, nil
}

func (c *GRPCClient) GetUser(ctx context.Context, userID string) (*models.User, error) {
	u, err := c.api.GetUser(ctx, &api.GetUserRequest{UserID: userID})
	return u, mapError(err)
}

func (c *GRPCClient) ListBoards(ctx context.Context, userID string) ([]models.Board, error) {
	resp, err := c.api.ListBoards(ctx, &api.ListBoardsRequest{UserID: userID})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Boards, nil
}

func (c *GRPCClient) GetBoard(ctx context.Context, boardID, userID string) (*models.Board, error) {
	b, err := c.api.GetBoard(ctx, &api.GetBoardRequest{BoardID: boardID, UserID: userID})
	return b, mapError(err)
}

func (c *GRPCClient) CreateBoard(ctx context.Context, userID, title, description, icon, color string) (*models.Board, error) {
	b, err := c.api.CreateBoard(ctx, &api.CreateBoardRequest{
		UserID:      userID,
		Title:       title,
		Description: description,
		Icon:        icon,
		Color:       color,
	})
	return b, mapError(err)
}

func (c *GRPCClient) DeleteBoard(ctx context.Context, boardID, userID string) error {
	_, err := c.api.DeleteBoard(ctx, &api.DeleteBoardRequest{BoardID: boardID, UserID: userID})
	return mapError(err)
}

func (c *GRPCClient) ExportBoard(ctx context.Context, boardID, userID string) (*models.BoardExport, error) {
	e, err := c.api.ExportBoard(ctx, &api.ExportBoardRequest{BoardID: boardID, UserID: userID})
	return e, mapError(err)
}

func (c *GRPCClient) CreatePanel(ctx context.Context, userID string, in models.CreatePanelInput) (*models.Panel, error) {
	p, err := c.api.CreatePanel(ctx, &api.CreatePanelRequest{UserID: userID, Panel: in})
	return p, mapError(err)
}

func (c *GRPCClient) UpdatePanelLayout(ctx context.Context, userID, panelID string, pos models.Position, size models.Size) (*models.Panel, error) {
	p, err := c.api.UpdatePanelLayout(ctx, &api.UpdatePanelLayoutRequest{UserID: userID, PanelID: panelID, Position: pos, Size: size})
	return p, mapError(err)
}

func (c *GRPCClient) ActivatePanel(ctx context.Context, userID, panelID string) (*models.Panel, error) {
	p, err := c.api.ActivatePanel(ctx, &api.ActivatePanelRequest{UserID: userID, PanelID: panelID})
	return p, mapError(err)
}

func (c *GRPCClient) DeletePanel(ctx context.Context, userID, panelID string) error {
	_, err := c.api.DeletePanel(ctx, &api.DeletePanelRequest{UserID: userID, PanelID: panelID})
	return mapError(err)
}

func (c *GRPCClient) ListDatasets(ctx context.Context) ([]models.GlobalDataset, error) {
	resp, err := c.api.ListDatasets(ctx, &api.ListDatasetsRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.Datasets, nil
}

func (c *GRPCClient) GetDataset(ctx context.Context, id string) (*models.GlobalDataset, error) {
	d, err := c.api.GetDataset(ctx, &api.GetDatasetRequest{DatasetID: id})
	return d, mapError(err)
}

func (c *GRPCClient) CreateDataset(ctx context.Context, name, typ string, columns []string) (*models.GlobalDataset, error) {
	d, err := c.api.CreateDataset(ctx, &api.CreateDatasetRequest{Name: name, Type: typ, Columns: columns})
	return d, mapError(err)
}

func (c *GRPCClient) AddDatasetRow(ctx context.Context, datasetID string, data models.JSON) (*models.DatasetRow, error) {
	row, err := c.api.AddDatasetRow(ctx, &api.AddDatasetRowRequest{DatasetID: datasetID, Data: data})
	return row, mapError(err)
}

func (c *GRPCClient) DeleteDataset(ctx context.Context, id string) error {
	_, err := c.api.DeleteDataset(ctx, &api.DeleteDatasetRequest{DatasetID: id})
	return mapError(err)
}
