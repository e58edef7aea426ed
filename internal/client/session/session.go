// Package session keeps the signed-in user of the CLI between invocations
// in a local SQLite file.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/boardkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/boardkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/boardkeeper/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// ErrNoSession is returned by Load when nobody is signed in.
var ErrNoSession = errors.New("not logged in")

const (
	keyUserID   = "user_id"
	keyUserName = "username"
	keyToken    = "token"
)

// Session is the identity the CLI acts as.
type Session struct {
	UserID   string
	UserName string
	Token    string
}

type Store struct {
	db   *sql.DB
	repo metadata.Repository
}

// Open opens (creating if needed) the state database at path and applies
// its schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open state %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	p, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("state migrations init: %w", err)
	}
	if _, err := p.Up(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("state migrations up: %w", err)
	}

	return &Store{db: db, repo: metadata.NewSQLiteRepository(db)}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns ErrNoSession unless a complete session was saved.
func (s *Store) Load(ctx context.Context) (Session, error) {
	var out Session
	for key, dst := range map[string]*string{keyUserID: &out.UserID, keyUserName: &out.UserName, keyToken: &out.Token} {
		v, err := s.repo.Get(ctx, key)
		if err != nil {
			return Session{}, err
		}
		*dst = string(v)
	}
	if out.UserID == "" || out.Token == "" {
		return Session{}, ErrNoSession
	}
	return out, nil
}

func (s *Store) Save(ctx context.Context, sess Session) error {
	if err := s.repo.Set(ctx, keyUserID, []byte(sess.UserID)); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, keyUserName, []byte(sess.UserName)); err != nil {
		return err
	}
	return s.repo.Set(ctx, keyToken, []byte(sess.Token))
}

func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
