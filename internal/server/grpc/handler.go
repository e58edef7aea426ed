package grpc

import (
	"context"

	"github.com/dmitrijs2005/boardkeeper/internal/api"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
)

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*models.AuthResponse, error) {
	resp, err := s.users.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return resp, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*models.AuthResponse, error) {
	resp, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return resp, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *api.GetUserRequest) (*models.User, error) {
	u, err := s.users.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, toStatus(err)
	}
	return u, nil
}

func (s *GRPCServer) ListBoards(ctx context.Context, req *api.ListBoardsRequest) (*api.ListBoardsResponse, error) {
	boards, err := s.boards.ListBoards(ctx, req.UserID)
	if err != nil {
		return nil, toStatus(err)
	}
	if boards == nil {
		boards = []models.Board{}
	}
	return &api.ListBoardsResponse{Boards: boards}, nil
}

func (s *GRPCServer) GetBoard(ctx context.Context, req *api.GetBoardRequest) (*models.Board, error) {
	b, err := s.boards.GetBoard(ctx, req.BoardID, req.UserID)
	if err != nil {
		return nil, toStatus(err)
	}
	return b, nil
}

func (s *GRPCServer) CreateBoard(ctx context.Context, req *api.CreateBoardRequest) (*models.Board, error) {
	b, err := s.boards.CreateBoard(ctx, req.UserID, req.Title, req.Description, req.Icon, req.Color)
	if err != nil {
		return nil, toStatus(err)
	}
	return b, nil
}

func (s *GRPCServer) DeleteBoard(ctx context.Context, req *api.DeleteBoardRequest) (*api.Empty, error) {
	if err := s.boards.DeleteBoard(ctx, req.BoardID, req.UserID); err != nil {
		return nil, toStatus(err)
	}
	return &api.Empty{}, nil
}

func (s *GRPCServer) ExportBoard(ctx context.Context, req *api.ExportBoardRequest) (*models.BoardExport, error) {
	e, err := s.exports.ExportBoard(ctx, req.BoardID, req.UserID)
	if err != nil {
		return nil, toStatus(err)
	}
	return e, nil
}

func (s *GRPCServer) CreatePanel(ctx context.Context, req *api.CreatePanelRequest) (*models.Panel, error) {
	p, err := s.boards.CreatePanel(ctx, req.UserID, req.Panel)
	if err != nil {
		return nil, toStatus(err)
	}
	return p, nil
}

func (s *GRPCServer) UpdatePanelLayout(ctx context.Context, req *api.UpdatePanelLayoutRequest) (*models.Panel, error) {
	p, err := s.boards.UpdatePanelLayout(ctx, req.UserID, req.PanelID, req.Position, req.Size)
	if err != nil {
		return nil, toStatus(err)
	}
	return p, nil
}

func (s *GRPCServer) ActivatePanel(ctx context.Context, req *api.ActivatePanelRequest) (*models.Panel, error) {
	p, err := s.boards.ActivatePanel(ctx, req.UserID, req.PanelID)
	if err != nil {
		return nil, toStatus(err)
	}
	return p, nil
}

func (s *GRPCServer) DeletePanel(ctx context.Context, req *api.DeletePanelRequest) (*api.Empty, error) {
	if err := s.boards.DeletePanel(ctx, req.UserID, req.PanelID); err != nil {
		return nil, toStatus(err)
	}
	return &api.Empty{}, nil
}

func (s *GRPCServer) ListDatasets(ctx context.Context, _ *api.ListDatasetsRequest) (*api.ListDatasetsResponse, error) {
	ds, err := s.datasets.ListDatasets(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	if ds == nil {
		ds = []models.GlobalDataset{}
	}
	return &api.ListDatasetsResponse{Datasets: ds}, nil
}

func (s *GRPCServer) GetDataset(ctx context.Context, req *api.GetDatasetRequest) (*models.GlobalDataset, error) {
	d, err := s.datasets.GetDataset(ctx, req.DatasetID)
	if err != nil {
		return nil, toStatus(err)
	}
	return d, nil
}

func (s *GRPCServer) CreateDataset(ctx context.Context, req *api.CreateDatasetRequest) (*models.GlobalDataset, error) {
	d, err := s.datasets.CreateDataset(ctx, req.Name, req.Type, req.Columns)
	if err != nil {
		return nil, toStatus(err)
	}
	return d, nil
}

func (s *GRPCServer) AddDatasetRow(ctx context.Context, req *api.AddDatasetRowRequest) (*models.DatasetRow, error) {
	row, err := s.datasets.AddDatasetRow(ctx, req.DatasetID, req.Data)
	if err != nil {
		return nil, toStatus(err)
	}
	return row, nil
}

func (s *GRPCServer) DeleteDataset(ctx context.Context, req *api.DeleteDatasetRequest) (*api.Empty, error) {
	if err := s.datasets.DeleteDataset(ctx, req.DatasetID); err != nil {
		return nil, toStatus(err)
	}
	return &api.Empty{}, nil
}
