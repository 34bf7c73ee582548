package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mimedefaults/internal/adapters"
	"mimedefaults/internal/app"
	"mimedefaults/internal/types"
)

type listOptions struct {
	Filter string
	All    bool
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content types with their default application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "Only show types whose name, default application or description contains this text")
	cmd.Flags().Bool("group", false, "Group content types by media type (config key group)")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Include content types without any application")
	_ = viper.BindPFlag("group", cmd.Flags().Lookup("group"))
	return cmd
}

// runList reads --group through viper, so a set flag beats the
// MIMEDEFAULTS_GROUP variable and the config file.
func runList(ctx context.Context, out io.Writer, opts listOptions) error {
	service := newAppService()
	result, err := service.List(ctx, app.ListRequest{
		Filter: opts.Filter,
		Group:  viper.GetBool("group"),
		All:    opts.All,
	})
	if err != nil {
		return err
	}
	writer, err := newEntryWriter(service)
	if err != nil {
		return err
	}
	if result.Categories != nil {
		return writer.WriteCategories(out, result.Categories)
	}
	return writer.WriteEntries(out, result.Entries)
}

func newEntryWriter(service app.Service) (adapters.EntryWriterAdapter, error) {
	format := types.OutputFormat(viper.GetString("format"))
	return adapters.NewEntryWriterAdapter(format, service.DisplayName)
}
