package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/fastbill-client/internal/constants"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

// recordClient is the part shared by the customer, invoice and project clients.
type recordClient interface {
	Get(ctx context.Context, opts *fastbill.QueryOptions) ([]fastbill.Record, error)
	Create(ctx context.Context, body any) (fastbill.ID, error)
	Update(ctx context.Context, id fastbill.ID, body any) (bool, error)
	Remove(ctx context.Context, id fastbill.ID) (bool, error)
}

// ResourceCommandConfig describes a command group for one FastBill resource.
type ResourceCommandConfig struct {
	Use     string
	Aliases []string
	Short   string
	Long    string
	// Noun is the singular resource name used in help texts, e.g. "customer".
	Noun string
	// IDField is the response key holding the id of a created resource.
	IDField string
	// Columns are shown by list in table output.
	Columns []string
	Select  func(fastbill.Client) recordClient
}

// withClient runs fn with a client built from the CLI configuration.
func withClient(cmd *cobra.Command, fn func(context.Context, fastbill.Client) error) error {
	ctx := commandContext(cmd)

	client, cleanup, err := CreateClient(ctx)
	defer cleanup()

	if err != nil {
		return err
	}

	return fn(ctx, client)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

func newResourceCommand(config ResourceCommandConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:     config.Use,
		Aliases: config.Aliases,
		Short:   config.Short,
		Long:    config.Long,
	}

	cmd.AddCommand(newListCommand(config))
	cmd.AddCommand(newCreateCommand(config))
	cmd.AddCommand(newUpdateCommand(config))
	cmd.AddCommand(newDeleteCommand(config))

	return cmd
}

func newListCommand(config ResourceCommandConfig) *cobra.Command {
	var (
		limit  int
		offset int
		filter map[string]string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   fmt.Sprintf("List %ss", config.Noun),
		Long:    fmt.Sprintf("List %ss, optionally filtered with --filter KEY=VALUE", config.Noun),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, client fastbill.Client) error {
				records, err := config.Select(client).Get(ctx, &fastbill.QueryOptions{
					Filter: parseFilter(filter),
					Limit:  limit,
					Offset: offset,
				})
				if err != nil {
					return fmt.Errorf("failed to list %ss: %w", config.Noun, err)
				}

				return renderRecords(cmd, records, config.Columns)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "maximum number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")
	cmd.Flags().StringToStringVar(&filter, "filter", nil, "filter as KEY=VALUE, e.g. CUSTOMER_ID=12")

	return cmd
}

func newCreateCommand(config ResourceCommandConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Create a %s", config.Noun),
		Long:  fmt.Sprintf("Create a %s from a JSON or YAML body using FastBill field names", config.Noun),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readBody(cmd)
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, client fastbill.Client) error {
				id, err := config.Select(client).Create(ctx, body)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", config.Noun, err)
				}

				return renderFields(cmd, Field{Name: config.IDField, Value: id})
			})
		},
	}

	addBodyFlags(cmd)

	return cmd
}

func newUpdateCommand(config ResourceCommandConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: fmt.Sprintf("Update a %s", config.Noun),
		Long:  fmt.Sprintf("Update a %s from a JSON or YAML body using FastBill field names", config.Noun),
		Args:  cobra.ExactArgs(constants.IDArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			body, err := readBody(cmd)
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, client fastbill.Client) error {
				ok, err := config.Select(client).Update(ctx, id, body)
				if err != nil {
					return fmt.Errorf("failed to update %s %d: %w", config.Noun, id, err)
				}

				return renderFields(cmd, Field{Name: config.IDField, Value: id}, Field{Name: "UPDATED", Value: ok})
			})
		},
	}

	addBodyFlags(cmd)

	return cmd
}

func newDeleteCommand(config ResourceCommandConfig) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   fmt.Sprintf("Delete a %s", config.Noun),
		Long:    fmt.Sprintf("Delete a %s by id", config.Noun),
		Args:    cobra.ExactArgs(constants.IDArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withClient(cmd, func(ctx context.Context, client fastbill.Client) error {
				ok, err := config.Select(client).Remove(ctx, id)
				if err != nil {
					return fmt.Errorf("failed to delete %s %d: %w", config.Noun, id, err)
				}

				return renderFields(cmd, Field{Name: config.IDField, Value: id}, Field{Name: "DELETED", Value: ok})
			})
		},
	}
}
