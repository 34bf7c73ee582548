package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mimedefaults/internal/app"
	"mimedefaults/internal/types"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show MIME",
		Short: "Show the default and associated applications of one content type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func runShow(ctx context.Context, out io.Writer, mime string) error {
	service := newAppService()
	result, err := service.Show(ctx, app.ShowRequest{MimeType: mime})
	if err != nil {
		return err
	}
	writer, err := newEntryWriter(service)
	if err != nil {
		return err
	}
	if writer.Format != types.OutputFormatTable {
		return writer.WriteEntries(out, []types.MimeEntry{result.Entry})
	}

	entry := result.Entry
	fmt.Fprintf(out, "MIME:        %s\n", entry.MimeType)
	fmt.Fprintf(out, "Description: %s\n", dash(entry.Description))
	if entry.DefaultAppID == "" {
		fmt.Fprintln(out, "Default:     -")
	} else {
		fmt.Fprintf(out, "Default:     %s (%s)\n", service.DisplayName(entry.DefaultAppID), entry.DefaultAppID)
	}
	fmt.Fprintln(out, "Applications:")
	if len(result.Apps) == 0 {
		fmt.Fprintln(out, "  -")
	}
	for _, summary := range result.Apps {
		marker := " "
		if summary.IsDefault {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s (%s)\n", marker, summary.Name, summary.ID)
	}
	return nil
}

func dash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
