package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"mimedefaults/internal/app"
)

type appsOptions struct {
	MimeType string
}

func newAppsCommand() *cobra.Command {
	opts := appsOptions{}
	cmd := &cobra.Command{
		Use:   "apps",
		Short: "List installed applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApps(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.MimeType, "mime", "", "Only list applications associated with this content type")
	return cmd
}

func runApps(ctx context.Context, out io.Writer, opts appsOptions) error {
	service := newAppService()
	result, err := service.Apps(ctx, app.AppsRequest{MimeType: opts.MimeType})
	if err != nil {
		return err
	}
	writer, err := newEntryWriter(service)
	if err != nil {
		return err
	}
	return writer.WriteApplications(out, result.Apps)
}
