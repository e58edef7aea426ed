package api

import "github.com/dmitrijs2005/boardkeeper/internal/server/models"

// Requests carry the acting user explicitly. The session token travels in
// metadata and is not checked.

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type GetUserRequest struct {
	UserID string `json:"userId"`
}

type ListBoardsRequest struct {
	UserID string `json:"userId"`
}

type ListBoardsResponse struct {
	Boards []models.Board `json:"boards"`
}

type GetBoardRequest struct {
	BoardID string `json:"boardId"`
	UserID  string `json:"userId"`
}

type CreateBoardRequest struct {
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

type DeleteBoardRequest struct {
	BoardID string `json:"boardId"`
	UserID  string `json:"userId"`
}

type ExportBoardRequest struct {
	BoardID string `json:"boardId"`
	UserID  string `json:"userId"`
}

type CreatePanelRequest struct {
	UserID string                  `json:"userId"`
	Panel  models.CreatePanelInput `json:"panel"`
}

type UpdatePanelLayoutRequest struct {
	UserID   string          `json:"userId"`
	PanelID  string          `json:"panelId"`
	Position models.Position `json:"position"`
	Size     models.Size     `json:"size"`
}

type ActivatePanelRequest struct {
	UserID  string `json:"userId"`
	PanelID string `json:"panelId"`
}

type DeletePanelRequest struct {
	UserID  string `json:"userId"`
	PanelID string `json:"panelId"`
}

type ListDatasetsRequest struct{}

type ListDatasetsResponse struct {
	Datasets []models.GlobalDataset `json:"datasets"`
}

type GetDatasetRequest struct {
	DatasetID string `json:"datasetId"`
}

type CreateDatasetRequest struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Columns []string `json:"columns"`
}

type AddDatasetRowRequest struct {
	DatasetID string      `json:"datasetId"`
	Data      models.JSON `json:"data"`
}

type DeleteDatasetRequest struct {
	DatasetID string `json:"datasetId"`
}

// Empty is the response of commands that return nothing.
type Empty struct{}
