package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"github.com/dmitrijs2005/boardkeeper/internal/dbx"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	usersrepo "github.com/dmitrijs2005/boardkeeper/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterThenLogin_IssuesFreshTokens(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	reg, err := svc.users.Register(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, reg.User.ID)
	assert.Equal(t, "alice", reg.User.UserName)
	assert.Len(t, reg.Token, 2*common.TokenSize)
	assert.NotEqual(t, "s3cret", reg.User.PasswordHash)

	first, err := svc.users.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	second, err := svc.users.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, reg.User.ID, first.User.ID)
	assert.NotEqual(t, reg.Token, first.Token)
	assert.NotEqual(t, first.Token, second.Token)
}

func TestLogin_UnknownUserAndWrongPasswordLookTheSame(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.users.Register(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, errUnknown := svc.users.Login(ctx, "bob", "s3cret")
	_, errWrong := svc.users.Login(ctx, "alice", "nope")

	assert.ErrorIs(t, errUnknown, common.ErrorUnauthorized)
	assert.ErrorIs(t, errWrong, common.ErrorUnauthorized)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestRegister_DuplicateIsConflict(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.users.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.users.Register(ctx, "alice", "other@example.com", "pw")
	assert.ErrorIs(t, err, common.ErrorStore)
	assert.ErrorIs(t, err, common.ErrorConflict)
	assert.Equal(t, common.KindConflict, common.KindOf(err))

	_, err = svc.users.Register(ctx, "alice2", "alice@example.com", "pw")
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.users.Register(ctx, " ", "a@example.com", "pw")
	assert.ErrorIs(t, err, common.ErrorInvalidData)

	_, err = svc.users.Register(ctx, "alice", "a@example.com", "")
	assert.ErrorIs(t, err, common.ErrorInvalidData)

	_, err = svc.users.Register(ctx, "alice", "a@example.com", strings.Repeat("x", 73))
	assert.ErrorIs(t, err, common.ErrorInvalidData)
}

func TestGetUserByID(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	reg, err := svc.users.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	u, err := svc.users.GetUserByID(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.True(t, u.CreatedAt.Equal(reg.User.CreatedAt))

	_, err = svc.users.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

type failingUsersRepo struct {
	usersrepo.Repository
	err error
}

func (f failingUsersRepo) GetUserByLogin(context.Context, string) (*models.User, error) {
	return nil, f.err
}

type usersManager struct {
	hookedManager
	users usersrepo.Repository
}

func (m *usersManager) Users(dbx.DBTX) usersrepo.Repository { return m.users }

func TestLogin_StoreErrorIsNotUnauthorized(t *testing.T) {
	db, m := newTestStore(t)
	boom := common.NewStoreError("get user by login", errors.New("conn reset"))
	rm := &usersManager{hookedManager: hookedManager{RepositoryManager: m}, users: failingUsersRepo{err: boom}}

	svc := NewUserService(db, rm, testConfig())
	_, err := svc.Login(context.Background(), "alice", "pw")

	assert.ErrorIs(t, err, common.ErrorStore)
	assert.NotErrorIs(t, err, common.ErrorUnauthorized)
}
