// Package cli implements the boardkeeper command line: one cobra command per
// server operation, JSON on stdout.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/boardkeeper/internal/client/client"
	"github.com/dmitrijs2005/boardkeeper/internal/client/config"
	"github.com/dmitrijs2005/boardkeeper/internal/client/session"
	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Service is the part of the gRPC client the commands use.
type Service interface {
	SetToken(token string)
	Close() error

	Register(ctx context.Context, username, email, password string) (*models.AuthResponse, error)
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)

	ListBoards(ctx context.Context, userID string) ([]models.Board, error)
	GetBoard(ctx context.Context, boardID, userID string) (*models.Board, error)
	CreateBoard(ctx context.Context, userID, title, description, icon, color string) (*models.Board, error)
	DeleteBoard(ctx context.Context, boardID, userID string) error
	ExportBoard(ctx context.Context, boardID, userID string) (*models.BoardExport, error)

	CreatePanel(ctx context.Context, userID string, in models.CreatePanelInput) (*models.Panel, error)
	UpdatePanelLayout(ctx context.Context, userID, panelID string, pos models.Position, size models.Size) (*models.Panel, error)
	ActivatePanel(ctx context.Context, userID, panelID string) (*models.Panel, error)
	DeletePanel(ctx context.Context, userID, panelID string) error

	ListDatasets(ctx context.Context) ([]models.GlobalDataset, error)
	GetDataset(ctx context.Context, id string) (*models.GlobalDataset, error)
	CreateDataset(ctx context.Context, name, typ string, columns []string) (*models.GlobalDataset, error)
	AddDatasetRow(ctx context.Context, datasetID string, data models.JSON) (*models.DatasetRow, error)
	DeleteDataset(ctx context.Context, id string) error
}

// SessionStore persists the signed-in identity between invocations.
type SessionStore interface {
	Load(ctx context.Context) (session.Session, error)
	Save(ctx context.Context, s session.Session) error
	Clear(ctx context.Context) error
	Close() error
}

// Deps are the outside-world hooks of the command tree.
type Deps struct {
	Connect      func(cfg *config.Config) (Service, error)
	OpenSession  func(ctx context.Context, path string) (SessionStore, error)
	ReadPassword func(fd int) ([]byte, error)
}

// DefaultDeps dials the configured server and keeps the session on disk.
func DefaultDeps() Deps {
	return Deps{
		Connect: func(cfg *config.Config) (Service, error) {
			return client.New(cfg.ServerEndpointAddr, cfg.RequestTimeout)
		},
		OpenSession: func(ctx context.Context, path string) (SessionStore, error) {
			return session.Open(ctx, path)
		},
		ReadPassword: term.ReadPassword,
	}
}

// RootOptions holds global flags and the resolved configuration.
type RootOptions struct {
	ConfigPath string
	Server     string
	Timeout    time.Duration
	StatePath  string

	cfg  *config.Config
	deps Deps
}

// NewRootCommand creates the root command for the BoardKeeper CLI.
func NewRootCommand(deps Deps) *cobra.Command {
	opts := &RootOptions{deps: deps}

	cmd := &cobra.Command{
		Use:           "boardkeeper",
		Short:         "BoardKeeper dashboard client",
		Long:          "Manage dashboards, their panels and shared datasets on a BoardKeeper server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolveConfig(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to JSON config file")
	cmd.PersistentFlags().StringVarP(&opts.Server, "server", "a", "", "server address (host:port)")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 0, "per-call timeout")
	cmd.PersistentFlags().StringVar(&opts.StatePath, "state", "", "local session database")

	cmd.AddCommand(newRegisterCommand(opts))
	cmd.AddCommand(newLoginCommand(opts))
	cmd.AddCommand(newLogoutCommand(opts))
	cmd.AddCommand(newWhoamiCommand(opts))
	cmd.AddCommand(newBoardsCommand(opts))
	cmd.AddCommand(newPanelsCommand(opts))
	cmd.AddCommand(newDatasetsCommand(opts))

	return cmd
}

// resolveConfig layers flags over the file and environment settings.
func (o *RootOptions) resolveConfig(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(o.ConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.ServerEndpointAddr = o.Server
	}
	if flags.Changed("timeout") {
		cfg.RequestTimeout = o.Timeout
	}
	if flags.Changed("state") {
		cfg.StatePath = o.StatePath
	}

	o.cfg = cfg
	return nil
}

// run opens the session store and a server connection around fn. When
// needLogin is set, the saved session must exist and its token is attached
// to every call.
func (o *RootOptions) run(cmd *cobra.Command, needLogin bool, fn func(ctx context.Context, svc Service, store SessionStore, sess session.Session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := o.deps.OpenSession(ctx, o.cfg.StatePath)
	if err != nil {
		return err
	}
	defer store.Close()

	sess, err := store.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrNoSession) && !needLogin:
	case errors.Is(err, session.ErrNoSession):
		return fmt.Errorf("%w: run 'boardkeeper login' first", err)
	default:
		return err
	}

	svc, err := o.deps.Connect(o.cfg)
	if err != nil {
		return fmt.Errorf("connect %s: %w", o.cfg.ServerEndpointAddr, err)
	}
	defer svc.Close()

	if sess.Token != "" {
		svc.SetToken(sess.Token)
	}

	return fn(ctx, svc, store, sess)
}

func (o *RootOptions) password(cmd *cobra.Command, given string) (string, error) {
	if given != "" {
		return given, nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	pw, err := o.deps.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
