package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/boardkeeper/internal/client/config"
	"github.com/dmitrijs2005/boardkeeper/internal/client/session"
	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
)

var created = time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)

type memSessions struct {
	sess   *session.Session
	closed int
}

func (m *memSessions) Load(context.Context) (session.Session, error) {
	if m.sess == nil {
		return session.Session{}, session.ErrNoSession
	}
	return *m.sess, nil
}

func (m *memSessions) Save(_ context.Context, s session.Session) error {
	m.sess = &s
	return nil
}

func (m *memSessions) Clear(context.Context) error {
	m.sess = nil
	return nil
}

func (m *memSessions) Close() error {
	m.closed++
	return nil
}

// fakeService records the last call and answers from canned values.
type fakeService struct {
	token  string
	calls  []string
	userID string

	panelIn   models.CreatePanelInput
	layoutPos models.Position
	layoutSz  models.Size
	rowData   models.JSON
	columns   []string
	export    *models.BoardExport
	err       error
}

func (f *fakeService) called(name, userID string) error {
	f.calls = append(f.calls, name)
	f.userID = userID
	return f.err
}

func (f *fakeService) SetToken(token string) { f.token = token }
func (f *fakeService) Close() error          { return nil }

func (f *fakeService) Register(_ context.Context, username, email, password string) (*models.AuthResponse, error) {
	if err := f.called("Register", ""); err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: &models.User{ID: "u-" + username, UserName: username, Email: email}, Token: "tok-" + password}, nil
}

func (f *fakeService) Login(_ context.Context, username, password string) (*models.AuthResponse, error) {
	if err := f.called("Login", ""); err != nil {
		return nil, err
	}
	if password != "pw" {
		return nil, common.ErrorUnauthorized
	}
	return &models.AuthResponse{User: &models.User{ID: "u-" + username, UserName: username}, Token: "tok-login"}, nil
}

func (f *fakeService) GetUser(_ context.Context, userID string) (*models.User, error) {
	if err := f.called("GetUser", userID); err != nil {
		return nil, err
	}
	return &models.User{ID: userID, UserName: "alice"}, nil
}

func (f *fakeService) ListBoards(_ context.Context, userID string) ([]models.Board, error) {
	if err := f.called("ListBoards", userID); err != nil {
		return nil, err
	}
	return []models.Board{{ID: "b1", UserID: userID, Title: "Resumen", CreatedAt: created, UpdatedAt: created, Panels: []models.Panel{}}}, nil
}

func (f *fakeService) GetBoard(_ context.Context, boardID, userID string) (*models.Board, error) {
	if err := f.called("GetBoard", userID); err != nil {
		return nil, err
	}
	return &models.Board{ID: boardID, UserID: userID, Panels: []models.Panel{}}, nil
}

func (f *fakeService) CreateBoard(_ context.Context, userID, title, description, icon, color string) (*models.Board, error) {
	if err := f.called("CreateBoard", userID); err != nil {
		return nil, err
	}
	return &models.Board{ID: "b-new", UserID: userID, Title: title, Description: description, Icon: icon, Color: color, Panels: []models.Panel{}}, nil
}

func (f *fakeService) DeleteBoard(_ context.Context, boardID, userID string) error {
	return f.called("DeleteBoard", userID)
}

func (f *fakeService) ExportBoard(_ context.Context, boardID, userID string) (*models.BoardExport, error) {
	if err := f.called("ExportBoard", userID); err != nil {
		return nil, err
	}
	return f.export, nil
}

func (f *fakeService) CreatePanel(_ context.Context, userID string, in models.CreatePanelInput) (*models.Panel, error) {
	if err := f.called("CreatePanel", userID); err != nil {
		return nil, err
	}
	f.panelIn = in
	return &models.Panel{ID: "p-new", BoardID: in.BoardID, Type: in.Type, Size: in.Size, Config: models.EmptyObject()}, nil
}

func (f *fakeService) UpdatePanelLayout(_ context.Context, userID, panelID string, pos models.Position, size models.Size) (*models.Panel, error) {
	if err := f.called("UpdatePanelLayout", userID); err != nil {
		return nil, err
	}
	f.layoutPos, f.layoutSz = pos, size
	return &models.Panel{ID: panelID, Position: pos, Size: size, Config: models.EmptyObject()}, nil
}

func (f *fakeService) ActivatePanel(_ context.Context, userID, panelID string) (*models.Panel, error) {
	if err := f.called("ActivatePanel", userID); err != nil {
		return nil, err
	}
	return &models.Panel{ID: panelID, Active: true, ZIndex: 3, Config: models.EmptyObject()}, nil
}

func (f *fakeService) DeletePanel(_ context.Context, userID, panelID string) error {
	return f.called("DeletePanel", userID)
}

func (f *fakeService) ListDatasets(context.Context) ([]models.GlobalDataset, error) {
	if err := f.called("ListDatasets", ""); err != nil {
		return nil, err
	}
	return []models.GlobalDataset{}, nil
}

func (f *fakeService) GetDataset(_ context.Context, id string) (*models.GlobalDataset, error) {
	if err := f.called("GetDataset", ""); err != nil {
		return nil, err
	}
	return &models.GlobalDataset{ID: id, Columns: []string{}, Rows: []models.DatasetRow{}}, nil
}

func (f *fakeService) CreateDataset(_ context.Context, name, typ string, columns []string) (*models.GlobalDataset, error) {
	if err := f.called("CreateDataset", ""); err != nil {
		return nil, err
	}
	f.columns = columns
	return &models.GlobalDataset{ID: "ds-new", Name: name, Type: typ, Columns: columns, Rows: []models.DatasetRow{}}, nil
}

func (f *fakeService) AddDatasetRow(_ context.Context, datasetID string, data models.JSON) (*models.DatasetRow, error) {
	if err := f.called("AddDatasetRow", ""); err != nil {
		return nil, err
	}
	f.rowData = data
	return &models.DatasetRow{ID: "r1", DatasetID: datasetID, Data: data}, nil
}

func (f *fakeService) DeleteDataset(_ context.Context, id string) error {
	return f.called("DeleteDataset", "")
}

func fakeDeps(svc *fakeService, store *memSessions) Deps {
	return Deps{
		Connect: func(*config.Config) (Service, error) { return svc, nil },
		OpenSession: func(context.Context, string) (SessionStore, error) {
			return store, nil
		},
		ReadPassword: func(int) ([]byte, error) { return []byte("typed"), nil },
	}
}
