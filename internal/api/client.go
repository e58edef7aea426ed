package api

import (
	"context"

	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	"google.golang.org/grpc"
)

// BoardKeeperClient is the typed client of the BoardKeeper service. Every
// call is sent with the JSON content-subtype.
type BoardKeeperClient struct {
	cc grpc.ClientConnInterface
}

func NewBoardKeeperClient(cc grpc.ClientConnInterface) *BoardKeeperClient {
	return &BoardKeeperClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BoardKeeperClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*models.AuthResponse, error) {
	return invoke[models.AuthResponse](ctx, c.cc, MethodRegister, in, opts)
}

func (c *BoardKeeperClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*models.AuthResponse, error) {
	return invoke[models.AuthResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *BoardKeeperClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*models.User, error) {
	return invoke[models.User](ctx, c.cc, MethodGetUser, in, opts)
}

func (c *BoardKeeperClient) ListBoards(ctx context.Context, in *ListBoardsRequest, opts ...grpc.CallOption) (*ListBoardsResponse, error) {
	return invoke[ListBoardsResponse](ctx, c.cc, MethodListBoards, in, opts)
}

func (c *BoardKeeperClient) GetBoard(ctx context.Context, in *GetBoardRequest, opts ...grpc.CallOption) (*models.Board, error) {
	return invoke[models.Board](ctx, c.cc, MethodGetBoard, in, opts)
}

func (c *BoardKeeperClient) CreateBoard(ctx context.Context, in *CreateBoardRequest, opts ...grpc.CallOption) (*models.Board, error) {
	return invoke[models.Board](ctx, c.cc, MethodCreateBoard, in, opts)
}

func (c *BoardKeeperClient) DeleteBoard(ctx context.Context, in *DeleteBoardRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodDeleteBoard, in, opts)
}

func (c *BoardKeeperClient) ExportBoard(ctx context.Context, in *ExportBoardRequest, opts ...grpc.CallOption) (*models.BoardExport, error) {
	return invoke[models.BoardExport](ctx, c.cc, MethodExportBoard, in, opts)
}

func (c *BoardKeeperClient) CreatePanel(ctx context.Context, in *CreatePanelRequest, opts ...grpc.CallOption) (*models.Panel, error) {
	return invoke[models.Panel](ctx, c.cc, MethodCreatePanel, in, opts)
}

func (c *BoardKeeperClient) UpdatePanelLayout(ctx context.Context, in *UpdatePanelLayoutRequest, opts ...grpc.CallOption) (*models.Panel, error) {
	return invoke[models.Panel](ctx, c.cc, MethodUpdatePanelLayout, in, opts)
}

func (c *BoardKeeperClient) ActivatePanel(ctx context.Context, in *ActivatePanelRequest, opts ...grpc.CallOption) (*models.Panel, error) {
	return invoke[models.Panel](ctx, c.cc, MethodActivatePanel, in, opts)
}

func (c *BoardKeeperClient) DeletePanel(ctx context.Context, in *DeletePanelRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodDeletePanel, in, opts)
}

func (c *BoardKeeperClient) ListDatasets(ctx context.Context, in *ListDatasetsRequest, opts ...grpc.CallOption) (*ListDatasetsResponse, error) {
	return invoke[ListDatasetsResponse](ctx, c.cc, MethodListDatasets, in, opts)
}

func (c *BoardKeeperClient) GetDataset(ctx context.Context, in *GetDatasetRequest, opts ...grpc.CallOption) (*models.GlobalDataset, error) {
	return invoke[models.GlobalDataset](ctx, c.cc, MethodGetDataset, in, opts)
}

func (c *BoardKeeperClient) CreateDataset(ctx context.Context, in *CreateDatasetRequest, opts ...grpc.CallOption) (*models.GlobalDataset, error) {
	return invoke[models.GlobalDataset](ctx, c.cc, MethodCreateDataset, in, opts)
}

func (c *BoardKeeperClient) AddDatasetRow(ctx context.Context, in *AddDatasetRowRequest, opts ...grpc.CallOption) (*models.DatasetRow, error) {
	return invoke[models.DatasetRow](ctx, c.cc, MethodAddDatasetRow, in, opts)
}

func (c *BoardKeeperClient) DeleteDataset(ctx context.Context, in *DeleteDatasetRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, MethodDeleteDataset, in, opts)
}
