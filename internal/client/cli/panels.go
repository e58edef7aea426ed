package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/boardkeeper/internal/client/session"
	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	"github.com/dmitrijs2005/boardkeeper/internal/server/services"
	"github.com/spf13/cobra"
)

func newPanelsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "panels",
		Short: "Place, move, focus and remove panels",
	}

	cmd.AddCommand(newPanelCreateCommand(opts))
	cmd.AddCommand(newPanelMoveCommand(opts))

	cmd.AddCommand(&cobra.Command{
		Use:   "activate <panel-id>",
		Short: "Bring a panel to the front and make it the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, true, func(ctx context.Context, svc Service, _ SessionStore, sess session.Session) error {
				p, err := svc.ActivatePanel(ctx, sess.UserID, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), p)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <panel-id>",
		Short: "Remove a panel from its board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, true, func(ctx context.Context, svc Service, _ SessionStore, sess session.Session) error {
				return svc.DeletePanel(ctx, sess.UserID, args[0])
			})
		},
	})

	return cmd
}

// parseConfig reads the --panel-config JSON text; empty means "not given".
func parseConfig(text string) (*models.JSON, error) {
	if text == "" {
		return nil, nil
	}
	v, err := models.ParseJSON([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: --panel-config: %v", common.ErrorInvalidData, err)
	}
	return &v, nil
}

func newPanelCreateCommand(opts *RootOptions) *cobra.Command {
	var (
		in        models.CreatePanelInput
		datasetID string
		cfgText   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a panel to a board",
		Long: `Add a panel to a board.

Width and height default to the preset size of the panel type when omitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := parseConfig(cfgText)
			if err != nil {
				return err
			}
			in.Config = cfg
			if datasetID != "" {
				in.DatasetID = &datasetID
			}
			if in.Size.Width == 0 && in.Size.Height == 0 {
				if size, ok := services.DefaultPanelSize(in.Type); ok {
					in.Size = size
				}
			}

			return opts.run(cmd, true, func(ctx context.Context, svc Service, _ SessionStore, sess session.Session) error {
				p, err := svc.CreatePanel(ctx, sess.UserID, in)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), p)
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&in.BoardID, "board", "b", "", "board id")
	f.StringVar(&in.Type, "type", "", "panel type (stat, chart, list, table, map, calendar, notes, ...)")
	f.StringVarP(&in.Title, "title", "t", "", "panel title")
	f.IntVar(&in.Position.X, "x", 0, "left edge")
	f.IntVar(&in.Position.Y, "y", 0, "top edge")
	f.IntVar(&in.Size.Width, "width", 0, "width")
	f.IntVar(&in.Size.Height, "height", 0, "height")
	f.IntVar(&in.ZIndex, "z", 0, "stacking index")
	f.StringVar(&datasetID, "dataset", "", "bound dataset id")
	f.StringVar(&cfgText, "panel-config", "", "panel config as a JSON object")
	_ = cmd.MarkFlagRequired("board")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newPanelMoveCommand(opts *RootOptions) *cobra.Command {
	var (
		pos  models.Position
		size models.Size
	)

	cmd := &cobra.Command{
		Use:   "move <panel-id>",
		Short: "Move and resize a panel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, true, func(ctx context.Context, svc Service, _ SessionStore, sess session.Session) error {
				p, err := svc.UpdatePanelLayout(ctx, sess.UserID, args[0], pos, size)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), p)
			})
		},
	}

	f := cmd.Flags()
	f.IntVar(&pos.X, "x", 0, "left edge")
	f.IntVar(&pos.Y, "y", 0, "top edge")
	f.IntVar(&size.Width, "width", 0, "width")
	f.IntVar(&size.Height, "height", 0, "height")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}
