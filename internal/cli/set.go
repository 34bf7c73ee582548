package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mimedefaults/internal/app"
)

type setOptions struct {
	DryRun bool
}

func newSetCommand() *cobra.Command {
	opts := setOptions{}
	cmd := &cobra.Command{
		Use:   "set MIME APP_ID",
		Short: "Set the user default application for a content type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], opts)
		},
	}
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the change to the user mimeapps.list without writing it")
	return cmd
}

func runSet(ctx context.Context, out io.Writer, mime string, appID string, opts setOptions) error {
	service := newAppService()
	result, err := service.SetDefault(ctx, app.SetDefaultRequest{
		MimeType: mime,
		AppID:    appID,
		DryRun:   opts.DryRun,
	})
	if err != nil {
		return err
	}
	if opts.DryRun {
		fmt.Fprintf(out, "--- %s\n+++ %s\n", result.Path, result.Path)
		if result.Diff == "" {
			fmt.Fprintln(out, "no changes")
			return nil
		}
		fmt.Fprint(out, result.Diff)
		return nil
	}
	fmt.Fprintf(out, "default for %s: %s\n", mime, dash(result.Entry.DefaultAppID))
	return nil
}
