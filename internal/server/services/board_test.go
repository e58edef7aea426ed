package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"github.com/dmitrijs2005/boardkeeper/internal/dbx"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/panels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func registerUser(t *testing.T, svc *testServices, name string) string {
	t.Helper()
	reg, err := svc.users.Register(context.Background(), name, name+"@example.com", "pw")
	require.NoError(t, err)
	return reg.User.ID
}

func createBoard(t *testing.T, svc *testServices, userID, title string) *models.Board {
	t.Helper()
	b, err := svc.boards.CreateBoard(context.Background(), userID, title, "desc", "i-heroicons-chart-bar", "blue")
	require.NoError(t, err)
	return b
}

func TestCreateBoard_ReturnsComposedBoard(t *testing.T) {
	svc := newTestServices(t)
	alice := registerUser(t, svc, "alice")

	b := createBoard(t, svc, alice, "Resumen")
	assert.Equal(t, alice, b.UserID)
	assert.Equal(t, "Resumen", b.Title)
	assert.Equal(t, "blue", b.Color)
	assert.NotNil(t, b.Panels)
	assert.Empty(t, b.Panels)
}

func TestGetBoard_OwnershipIsNotFound(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	bob := registerUser(t, svc, "bob")

	b := createBoard(t, svc, alice, "Private")

	_, err := svc.boards.GetBoard(ctx, b.ID, bob)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = svc.boards.GetBoard(ctx, "missing", alice)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	got, err := svc.boards.GetBoard(ctx, b.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
}

func TestListBoards_NewestFirstAndScoped(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	bob := registerUser(t, svc, "bob")

	first := createBoard(t, svc, alice, "First")
	second := createBoard(t, svc, alice, "Second")
	createBoard(t, svc, bob, "Bob's")

	list, err := svc.boards.ListBoards(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	empty, err := svc.boards.ListBoards(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestPanels_OrderedByZIndex(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	b := createBoard(t, svc, alice, "Stack")

	for _, z := range []int{3, 1, 2} {
		_, err := svc.boards.CreatePanel(ctx, alice, models.CreatePanelInput{
			BoardID: b.ID, Type: "stat", Title: "z", ZIndex: z,
			Size: models.Size{Width: 280, Height: 200},
		})
		require.NoError(t, err)
	}

	got, err := svc.boards.GetBoard(ctx, b.ID, alice)
	require.NoError(t, err)
	require.Len(t, got.Panels, 3)

	var zs []int
	for _, p := range got.Panels {
		zs = append(zs, p.ZIndex)
	}
	assert.Equal(t, []int{1, 2, 3}, zs)
}

func TestPanels_EqualZIndexKeepsCreationOrder(t *testing.T) {
	svc := newTestServicesAt(t, frozenClock)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	b := createBoard(t, svc, alice, "Ties")

	var want []string
	for _, title := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		p, err := svc.boards.CreatePanel(ctx, alice, models.CreatePanelInput{BoardID: b.ID, Type: "notes", Title: title})
		require.NoError(t, err)
		want = append(want, p.Title)
	}

	got, err := svc.boards.GetBoard(ctx, b.ID, alice)
	require.NoError(t, err)

	var titles []string
	for _, p := range got.Panels {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, want, titles)
}

func TestListBoards_SameInstantNewestInsertFirst(t *testing.T) {
	svc := newTestServicesAt(t, frozenClock)
	alice := registerUser(t, svc, "alice")

	for _, title := range []string{"uno", "dos", "tres", "cuatro"} {
		createBoard(t, svc, alice, title)
	}

	got, err := svc.boards.ListBoards(context.Background(), alice)
	require.NoError(t, err)

	var titles []string
	for _, b := range got {
		titles = append(titles, b.Title)
	}
	assert.Equal(t, []string{"cuatro", "tres", "dos", "uno"}, titles)
}

func TestCreatePanel_ForeignBoardIsUnauthorized(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	bob := registerUser(t, svc, "bob")
	b := createBoard(t, svc, alice, "Alice's")

	_, err := svc.boards.CreatePanel(ctx, bob, models.CreatePanelInput{BoardID: b.ID, Type: "stat"})
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = svc.boards.CreatePanel(ctx, bob, models.CreatePanelInput{BoardID: "missing", Type: "stat"})
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	got, err := svc.boards.GetBoard(ctx, b.ID, alice)
	require.NoError(t, err)
	assert.Empty(t, got.Panels)
}

func TestCreatePanel_ConfigKeepsLargeIntegersExact(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	b := createBoard(t, svc, alice, "Cfg")

	const text = `{"since":1732789200123456789,"seriesId":9007199254740993}`
	cfg, err := models.ParseJSON([]byte(text))
	require.NoError(t, err)

	_, err = svc.boards.CreatePanel(ctx, alice, models.CreatePanelInput{BoardID: b.ID, Type: "chart", Config: &cfg})
	require.NoError(t, err)

	got, err := svc.boards.GetBoard(ctx, b.ID, alice)
	require.NoError(t, err)
	require.Len(t, got.Panels, 1)
	assert.Equal(t, text, got.Panels[0].Config.String())
}

func TestCreatePanel_Config(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	b := createBoard(t, svc, alice, "Cfg")

	p, err := svc.boards.CreatePanel(ctx, alice, models.CreatePanelInput{BoardID: b.ID, Type: "chart"})
	require.NoError(t, err)
	assert.Equal(t, "{}", p.Config.String())
	assert.False(t, p.Active)
	assert.Nil(t, p.Data)

	cfg := models.MustJSON(map[string]any{"curveType": "linear", "showLegend": true})
	p, err = svc.boards.CreatePanel(ctx, alice, models.CreatePanelInput{
		BoardID: b.ID, Type: "chart", Position: models.Position{X: 40, Y: 60}, Config: &cfg,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"curveType":"linear","showLegend":true}`, p.Config.String())
	assert.Equal(t, models.Position{X: 40, Y: 60}, p.Position)

	list := models.MustJSON([]any{1.0, 2.0})
	_, err = svc.boards.CreatePanel(ctx, alice, models.CreatePanelInput{BoardID: b.ID, Type: "chart", Config: &list})
	assert.ErrorIs(t, err, common.ErrorInvalidData)

	got, err := svc.boards.GetBoard(ctx, b.ID, alice)
	require.NoError(t, err)
	assert.Len(t, got.Panels, 2)
}

func TestPanel_MalformedStoredConfigDegrades(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	b := createBoard(t, svc, alice, "Broken")

	p, err := svc.boards.CreatePanel(ctx, alice, models.CreatePanelInput{BoardID: b.ID, Type: "notes"})
	require.NoError(t, err)

	_, err = svc.db.ExecContext(ctx, `UPDATE panels SET config = $1 WHERE id = $2`, `{"oops":`, p.ID)
	require.NoError(t, err)

	got, err := svc.boards.GetBoard(ctx, b.ID, alice)
	require.NoError(t, err)
	require.Len(t, got.Panels, 1)
	assert.Equal(t, "{}", got.Panels[0].Config.String())
}

func TestPanel_BoundDatasetIsMaterialized(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	b := createBoard(t, svc, alice, "Data")

	ds, err := svc.datasets.CreateDataset(ctx, "Ventas", "chart", []string{"date", "total"})
	require.NoError(t, err)
	_, err = svc.datasets.AddDatasetRow(ctx, ds.ID, models.MustJSON(map[string]any{"date": "2024-01-01", "total": 5.0}))
	require.NoError(t, err)

	created, err := svc.boards.CreatePanel(ctx, alice, models.CreatePanelInput{
		BoardID: b.ID, Type: "chart", DatasetID: strPtr(ds.ID),
	})
	require.NoError(t, err)
	require.NotNil(t, created.Data)
	assert.Equal(t, ds.ID, created.Data.ID)

	_, err = svc.boards.CreatePanel(ctx, alice, models.CreatePanelInput{BoardID: b.ID, Type: "notes", ZIndex: 1})
	require.NoError(t, err)

	got, err := svc.boards.GetBoard(ctx, b.ID, alice)
	require.NoError(t, err)
	require.Len(t, got.Panels, 2)
	require.NotNil(t, got.Panels[0].Data)
	assert.Len(t, got.Panels[0].Data.Rows, 1)
	assert.Equal(t, []string{"date", "total"}, got.Panels[0].Data.Columns)
	assert.Nil(t, got.Panels[1].Data)
}

func TestPanel_DeletedDatasetLeavesPanelWithoutData(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	b := createBoard(t, svc, alice, "Orphans")

	ds, err := svc.datasets.CreateDataset(ctx, "Gone soon", "table", nil)
	require.NoError(t, err)

	p, err := svc.boards.CreatePanel(ctx, alice, models.CreatePanelInput{BoardID: b.ID, Type: "table", DatasetID: strPtr(ds.ID)})
	require.NoError(t, err)
	require.NotNil(t, p.Data)

	require.NoError(t, svc.datasets.DeleteDataset(ctx, ds.ID))

	got, err := svc.boards.GetBoard(ctx, b.ID, alice)
	require.NoError(t, err)
	require.Len(t, got.Panels, 1)
	assert.Nil(t, got.Panels[0].Data)
	require.NotNil(t, got.Panels[0].DatasetID)
	assert.Equal(t, ds.ID, *got.Panels[0].DatasetID)
}

func TestUpdatePanelLayout_ClampsToPreset(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	bob := registerUser(t, svc, "bob")
	b := createBoard(t, svc, alice, "Layout")

	stat, err := svc.boards.CreatePanel(ctx, alice, models.CreatePanelInput{BoardID: b.ID, Type: "stat"})
	require.NoError(t, err)
	custom, err := svc.boards.CreatePanel(ctx, alice, models.CreatePanelInput{BoardID: b.ID, Type: "gauge"})
	require.NoError(t, err)

	moved, err := svc.boards.UpdatePanelLayout(ctx, alice, stat.ID, models.Position{X: 10, Y: 20}, models.Size{Width: 5000, Height: 10})
	require.NoError(t, err)
	assert.Equal(t, models.Position{X: 10, Y: 20}, moved.Position)
	assert.Equal(t, models.Size{Width: 600, Height: 150}, moved.Size)

	free, err := svc.boards.UpdatePanelLayout(ctx, alice, custom.ID, models.Position{}, models.Size{Width: 5000, Height: 10})
	require.NoError(t, err)
	assert.Equal(t, models.Size{Width: 5000, Height: 10}, free.Size)

	got, err := svc.boards.GetBoard(ctx, b.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, models.Size{Width: 600, Height: 150}, got.Panels[0].Size)

	_, err = svc.boards.UpdatePanelLayout(ctx, bob, stat.ID, models.Position{}, models.Size{})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestActivatePanel_BringsToFront(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	bob := registerUser(t, svc, "bob")
	b := createBoard(t, svc, alice, "Focus")

	var ids []string
	for z := 1; z <= 3; z++ {
		p, err := svc.boards.CreatePanel(ctx, alice, models.CreatePanelInput{BoardID: b.ID, Type: "notes", ZIndex: z})
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	_, err := svc.boards.ActivatePanel(ctx, alice, ids[1])
	require.NoError(t, err)
	active, err := svc.boards.ActivatePanel(ctx, alice, ids[0])
	require.NoError(t, err)
	assert.True(t, active.Active)
	assert.Equal(t, 5, active.ZIndex)

	got, err := svc.boards.GetBoard(ctx, b.ID, alice)
	require.NoError(t, err)
	require.Len(t, got.Panels, 3)

	last := got.Panels[2]
	assert.Equal(t, ids[0], last.ID)
	assert.True(t, last.Active)
	for _, p := range got.Panels[:2] {
		assert.False(t, p.Active, p.ID)
	}

	_, err = svc.boards.ActivatePanel(ctx, bob, ids[2])
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDeletePanelAndBoard(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	bob := registerUser(t, svc, "bob")
	b := createBoard(t, svc, alice, "Doomed")

	p1, err := svc.boards.CreatePanel(ctx, alice, models.CreatePanelInput{BoardID: b.ID, Type: "stat"})
	require.NoError(t, err)
	_, err = svc.boards.CreatePanel(ctx, alice, models.CreatePanelInput{BoardID: b.ID, Type: "stat"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.boards.DeletePanel(ctx, bob, p1.ID), common.ErrorNotFound)
	require.NoError(t, svc.boards.DeletePanel(ctx, alice, p1.ID))
	assert.ErrorIs(t, svc.boards.DeletePanel(ctx, alice, p1.ID), common.ErrorNotFound)

	assert.ErrorIs(t, svc.boards.DeleteBoard(ctx, b.ID, bob), common.ErrorNotFound)
	require.NoError(t, svc.boards.DeleteBoard(ctx, b.ID, alice))

	var n int
	require.NoError(t, svc.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM panels WHERE board_id = $1`, b.ID).Scan(&n))
	assert.Zero(t, n)

	_, err = svc.boards.GetBoard(ctx, b.ID, alice)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

type failingResolver struct{ calls int }

func (f *failingResolver) ResolveForPanel(context.Context, string) (*models.GlobalDataset, error) {
	f.calls++
	return nil, errors.New("resolver down")
}

func TestAssembly_ResolverFailureIsSwallowed(t *testing.T) {
	db, m := newTestStore(t)
	ctx := context.Background()

	users := NewUserService(db, m, testConfig())
	reg, err := users.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	resolver := &failingResolver{}
	boards := NewBoardService(db, m, resolver)

	b, err := boards.CreateBoard(ctx, reg.User.ID, "t", "", "", "")
	require.NoError(t, err)
	_, err = boards.CreatePanel(ctx, reg.User.ID, models.CreatePanelInput{BoardID: b.ID, Type: "chart", DatasetID: strPtr("ds-x")})
	require.NoError(t, err)
	_, err = boards.CreatePanel(ctx, reg.User.ID, models.CreatePanelInput{BoardID: b.ID, Type: "chart", DatasetID: strPtr("ds-y"), ZIndex: 1})
	require.NoError(t, err)

	resolver.calls = 0
	got, err := boards.GetBoard(ctx, b.ID, reg.User.ID)
	require.NoError(t, err)
	require.Len(t, got.Panels, 2)
	assert.Nil(t, got.Panels[0].Data)
	assert.Nil(t, got.Panels[1].Data)
	assert.Equal(t, 2, resolver.calls, "one resolution per bound panel")
}

type listFailingPanels struct {
	panels.Repository
	failBoard string
}

func (f listFailingPanels) ListByBoard(ctx context.Context, boardID string) ([]models.PanelRecord, error) {
	if boardID == f.failBoard {
		return nil, common.NewStoreError("list panels", errors.New("disk I/O error"))
	}
	return f.Repository.ListByBoard(ctx, boardID)
}

func TestListBoards_AnyAssemblyFailureAborts(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice")
	createBoard(t, svc, alice, "ok")
	bad := createBoard(t, svc, alice, "bad")

	hooked := &hookedManager{
		RepositoryManager: svc.m,
		panels: func(db dbx.DBTX) panels.Repository {
			return listFailingPanels{Repository: svc.m.Panels(db), failBoard: bad.ID}
		},
	}
	boards := NewBoardService(svc.db, hooked, svc.datasets)

	list, err := boards.ListBoards(ctx, alice)
	assert.Nil(t, list)
	assert.ErrorIs(t, err, common.ErrorStore)
}
