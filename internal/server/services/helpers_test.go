package services

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/boardkeeper/internal/dbx"
	"github.com/dmitrijs2005/boardkeeper/internal/server/config"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/datasets"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/panels"
	"github.com/dmitrijs2005/boardkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/boardkeeper/internal/server/store"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestStore opens a private in-memory SQLite database with the real
// schema applied.
func newTestStore(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(context.Background(), "file:"+name+"?mode=memory&cache=shared", 1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	m, err := repomanager.NewSQLRepositoryManager(st.Dialect())
	require.NoError(t, err)
	require.NoError(t, m.RunMigrations(context.Background(), st.DB()))

	return st.DB(), m
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BcryptCost = bcrypt.MinCost
	return cfg
}

// stepClock advances one second on every reading so creation order is
// strictly increasing.
type stepClock struct {
	mu  sync.Mutex
	cur time.Time
}

func newStepClock() *stepClock {
	return &stepClock{cur: time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.cur
	c.cur = c.cur.Add(time.Second)
	return t
}

type testServices struct {
	db       *sql.DB
	m        repomanager.RepositoryManager
	users    *UserService
	datasets *DatasetService
	boards   *BoardService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	return newTestServicesAt(t, newStepClock().Now)
}

// newTestServicesAt wires the services to the given clock.
func newTestServicesAt(t *testing.T, now func() time.Time) *testServices {
	t.Helper()
	db, m := newTestStore(t)

	ds := NewDatasetService(db, m, WithClock(now))
	return &testServices{
		db:       db,
		m:        m,
		users:    NewUserService(db, m, testConfig(), WithClock(now)),
		datasets: ds,
		boards:   NewBoardService(db, m, ds, WithClock(now)),
	}
}

// frozenClock always reads the same instant.
func frozenClock() time.Time {
	return time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)
}

// hookedManager overrides selected repositories of an underlying manager.
type hookedManager struct {
	repomanager.RepositoryManager
	datasets func(db dbx.DBTX) datasets.Repository
	panels   func(db dbx.DBTX) panels.Repository
}

func (h *hookedManager) Datasets(db dbx.DBTX) datasets.Repository {
	if h.datasets != nil {
		return h.datasets(db)
	}
	return h.RepositoryManager.Datasets(db)
}

func (h *hookedManager) Panels(db dbx.DBTX) panels.Repository {
	if h.panels != nil {
		return h.panels(db)
	}
	return h.RepositoryManager.Panels(db)
}
