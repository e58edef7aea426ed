package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/boardkeeper/internal/client/session"
	"github.com/dmitrijs2005/boardkeeper/internal/common"
	"github.com/dmitrijs2005/boardkeeper/internal/server/models"
	"github.com/spf13/cobra"
)

func newDatasetsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "Work with shared datasets",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every dataset with its rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, false, func(ctx context.Context, svc Service, _ SessionStore, _ session.Session) error {
				ds, err := svc.ListDatasets(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), ds)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <dataset-id>",
		Short: "Show one dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, false, func(ctx context.Context, svc Service, _ SessionStore, _ session.Session) error {
				d, err := svc.GetDataset(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), d)
			})
		},
	})

	cmd.AddCommand(newDatasetCreateCommand(opts))

	cmd.AddCommand(&cobra.Command{
		Use:   "add-row <dataset-id> <json>",
		Short: "Append a row to a dataset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := models.ParseJSON([]byte(args[1]))
			if err != nil {
				return fmt.Errorf("%w: row: %v", common.ErrorInvalidData, err)
			}
			return opts.run(cmd, false, func(ctx context.Context, svc Service, _ SessionStore, _ session.Session) error {
				row, err := svc.AddDatasetRow(ctx, args[0], data)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), row)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <dataset-id>",
		Short: "Delete a dataset and its rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, false, func(ctx context.Context, svc Service, _ SessionStore, _ session.Session) error {
				return svc.DeleteDataset(ctx, args[0])
			})
		},
	})

	return cmd
}

func newDatasetCreateCommand(opts *RootOptions) *cobra.Command {
	var (
		name, typ string
		columns   []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, false, func(ctx context.Context, svc Service, _ SessionStore, _ session.Session) error {
				d, err := svc.CreateDataset(ctx, name, typ, columns)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), d)
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "dataset name")
	cmd.Flags().StringVar(&typ, "type", "", "dataset type")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "ordered column names, comma separated")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
