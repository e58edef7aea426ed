package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/boardkeeper/internal/client/session"
	"github.com/dmitrijs2005/boardkeeper/internal/netx"
	"github.com/spf13/cobra"
)

// download is a seam for netx.DownloadFromPresignedURL.
var download = netx.DownloadFromPresignedURL

func newBoardsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "List, show, create, delete and export boards",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your boards, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, true, func(ctx context.Context, svc Service, _ SessionStore, sess session.Session) error {
				boards, err := svc.ListBoards(ctx, sess.UserID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), boards)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <board-id>",
		Short: "Show a board with its panels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, true, func(ctx context.Context, svc Service, _ SessionStore, sess session.Session) error {
				b, err := svc.GetBoard(ctx, args[0], sess.UserID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), b)
			})
		},
	})

	cmd.AddCommand(newBoardCreateCommand(opts))

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board and its panels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, true, func(ctx context.Context, svc Service, _ SessionStore, sess session.Session) error {
				return svc.DeleteBoard(ctx, args[0], sess.UserID)
			})
		},
	})

	cmd.AddCommand(newBoardExportCommand(opts))

	return cmd
}

func newBoardCreateCommand(opts *RootOptions) *cobra.Command {
	var title, description, icon, color string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, true, func(ctx context.Context, svc Service, _ SessionStore, sess session.Session) error {
				b, err := svc.CreateBoard(ctx, sess.UserID, title, description, icon, color)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), b)
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "board title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "board description")
	cmd.Flags().StringVar(&icon, "icon", "i-heroicons-squares-2x2", "icon name")
	cmd.Flags().StringVar(&color, "color", "blue", "accent color")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newBoardExportCommand(opts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <board-id>",
		Short: "Upload a board snapshot and print its download link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, true, func(ctx context.Context, svc Service, _ SessionStore, sess session.Session) error {
				exp, err := svc.ExportBoard(ctx, args[0], sess.UserID)
				if err != nil {
					return err
				}
				if output != "" {
					body, err := download(ctx, exp.URL)
					if err != nil {
						return fmt.Errorf("fetch snapshot: %w", err)
					}
					if err := os.WriteFile(output, body, 0o600); err != nil {
						return err
					}
				}
				return printJSON(cmd.OutOrStdout(), exp)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "also download the snapshot to this file")

	return cmd
}
