package api

import (
	"context"

	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "boardkeeper.v1.BoardKeeper"

const (
	MethodRegister          = "Register"
	MethodLogin             = "Login"
	MethodGetUser           = "GetUser"
	MethodListBoards        = "ListBoards"
	MethodGetBoard          = "GetBoard"
	MethodCreateBoard       = "CreateBoard"
	MethodDeleteBoard       = "DeleteBoard"
	MethodExportBoard       = "ExportBoard"
	MethodCreatePanel       = "CreatePanel"
	MethodUpdatePanelLayout = "UpdatePanelLayout"
	MethodActivatePanel     = "ActivatePanel"
	MethodDeletePanel       = "DeletePanel"
	MethodListDatasets      = "ListDatasets"
	MethodGetDataset        = "GetDataset"
	MethodCreateDataset     = "CreateDataset"
	MethodAddDatasetRow     = "AddDatasetRow"
	MethodDeleteDataset     = "DeleteDataset"
)

// FullMethod returns the gRPC path of method, e.g.
// "/boardkeeper.v1.BoardKeeper/GetBoard".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// BoardKeeperServer is the server API for the BoardKeeper service.
type BoardKeeperServer interface {
	Register(context.Context, *RegisterRequest) (*models.AuthResponse, error)
	Login(context.Context, *LoginRequest) (*models.AuthResponse, error)
	GetUser(context.Context, *GetUserRequest) (*models.User, error)
	ListBoards(context.Context, *ListBoardsRequest) (*ListBoardsResponse, error)
	GetBoard(context.Context, *GetBoardRequest) (*models.Board, error)
	CreateBoard(context.Context, *CreateBoardRequest) (*models.Board, error)
	DeleteBoard(context.Context, *DeleteBoardRequest) (*Empty, error)
	ExportBoard(context.Context, *ExportBoardRequest) (*models.BoardExport, error)
	CreatePanel(context.Context, *CreatePanelRequest) (*models.Panel, error)
	UpdatePanelLayout(context.Context, *UpdatePanelLayoutRequest) (*models.Panel, error)
	ActivatePanel(context.Context, *ActivatePanelRequest) (*models.Panel, error)
	DeletePanel(context.Context, *DeletePanelRequest) (*Empty, error)
	ListDatasets(context.Context, *ListDatasetsRequest) (*ListDatasetsResponse, error)
	GetDataset(context.Context, *GetDatasetRequest) (*models.GlobalDataset, error)
	CreateDataset(context.Context, *CreateDatasetRequest) (*models.GlobalDataset, error)
	AddDatasetRow(context.Context, *AddDatasetRowRequest) (*models.DatasetRow, error)
	DeleteDataset(context.Context, *DeleteDatasetRequest) (*Empty, error)
}

// UnimplementedBoardKeeperServer answers every method with
// codes.Unimplemented. Embed it to implement a subset of the service.
type UnimplementedBoardKeeperServer struct{}

func (UnimplementedBoardKeeperServer) Register(context.Context, *RegisterRequest) (*models.AuthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}

func (UnimplementedBoardKeeperServer) Login(context.Context, *LoginRequest) (*models.AuthResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

func (UnimplementedBoardKeeperServer) GetUser(context.Context, *GetUserRequest) (*models.User, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUser not implemented")
}

func (UnimplementedBoardKeeperServer) ListBoards(context.Context, *ListBoardsRequest) (*ListBoardsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListBoards not implemented")
}

func (UnimplementedBoardKeeperServer) GetBoard(context.Context, *GetBoardRequest) (*models.Board, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBoard not implemented")
}

func (UnimplementedBoardKeeperServer) CreateBoard(context.Context, *CreateBoardRequest) (*models.Board, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateBoard not implemented")
}

func (UnimplementedBoardKeeperServer) DeleteBoard(context.Context, *DeleteBoardRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteBoard not implemented")
}

func (UnimplementedBoardKeeperServer) ExportBoard(context.Context, *ExportBoardRequest) (*models.BoardExport, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportBoard not implemented")
}

func (UnimplementedBoardKeeperServer) CreatePanel(context.Context, *CreatePanelRequest) (*models.Panel, error) {
	return nil, status.Error(codes.Unimplemented, "method CreatePanel not implemented")
}

func (UnimplementedBoardKeeperServer) UpdatePanelLayout(context.Context, *UpdatePanelLayoutRequest) (*models.Panel, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePanelLayout not implemented")
}

func (UnimplementedBoardKeeperServer) ActivatePanel(context.Context, *ActivatePanelRequest) (*models.Panel, error) {
	return nil, status.Error(codes.Unimplemented, "method ActivatePanel not implemented")
}

func (UnimplementedBoardKeeperServer) DeletePanel(context.Context, *DeletePanelRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeletePanel not implemented")
}

func (UnimplementedBoardKeeperServer) ListDatasets(context.Context, *ListDatasetsRequest) (*ListDatasetsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDatasets not implemented")
}

func (UnimplementedBoardKeeperServer) GetDataset(context.Context, *GetDatasetRequest) (*models.GlobalDataset, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDataset not implemented")
}

func (UnimplementedBoardKeeperServer) CreateDataset(context.Context, *CreateDatasetRequest) (*models.GlobalDataset, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateDataset not implemented")
}

func (UnimplementedBoardKeeperServer) AddDatasetRow(context.Context, *AddDatasetRowRequest) (*models.DatasetRow, error) {
	return nil, status.Error(codes.Unimplemented, "method AddDatasetRow not implemented")
}

func (UnimplementedBoardKeeperServer) DeleteDataset(context.Context, *DeleteDatasetRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteDataset not implemented")
}

// unary adapts a typed server method to a grpc.MethodHandler.
func unary[Req, Resp any](method string, call func(BoardKeeperServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BoardKeeperServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(BoardKeeperServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc is the grpc.ServiceDesc for the BoardKeeper service.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BoardKeeperServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodRegister, Handler: unary(MethodRegister, BoardKeeperServer.Register)},
		{MethodName: MethodLogin, Handler: unary(MethodLogin, BoardKeeperServer.Login)},
		{MethodName: MethodGetUser, Handler: unary(MethodGetUser, BoardKeeperServer.GetUser)},
		{MethodName: MethodListBoards, Handler: unary(MethodListBoards, BoardKeeperServer.ListBoards)},
		{MethodName: MethodGetBoard, Handler: unary(MethodGetBoard, BoardKeeperServer.GetBoard)},
		{MethodName: MethodCreateBoard, Handler: unary(MethodCreateBoard, BoardKeeperServer.CreateBoard)},
		{MethodName: MethodDeleteBoard, Handler: unary(MethodDeleteBoard, BoardKeeperServer.DeleteBoard)},
		{MethodName: MethodExportBoard, Handler: unary(MethodExportBoard, BoardKeeperServer.ExportBoard)},
		{MethodName: MethodCreatePanel, Handler: unary(MethodCreatePanel, BoardKeeperServer.CreatePanel)},
		{MethodName: MethodUpdatePanelLayout, Handler: unary(MethodUpdatePanelLayout, BoardKeeperServer.UpdatePanelLayout)},
		{MethodName: MethodActivatePanel, Handler: unary(MethodActivatePanel, BoardKeeperServer.ActivatePanel)},
		{MethodName: MethodDeletePanel, Handler: unary(MethodDeletePanel, BoardKeeperServer.DeletePanel)},
		{MethodName: MethodListDatasets, Handler: unary(MethodListDatasets, BoardKeeperServer.ListDatasets)},
		{MethodName: MethodGetDataset, Handler: unary(MethodGetDataset, BoardKeeperServer.GetDataset)},
		{MethodName: MethodCreateDataset, Handler: unary(MethodCreateDataset, BoardKeeperServer.CreateDataset)},
		{MethodName: MethodAddDatasetRow, Handler: unary(MethodAddDatasetRow, BoardKeeperServer.AddDatasetRow)},
		{MethodName: MethodDeleteDataset, Handler: unary(MethodDeleteDataset, BoardKeeperServer.DeleteDataset)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "boardkeeper/v1/service",
}

// RegisterBoardKeeperServer registers srv on s.
func RegisterBoardKeeperServer(s grpc.ServiceRegistrar, srv BoardKeeperServer) {
	s.RegisterService(&ServiceDesc, srv)
}
