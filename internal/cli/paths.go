package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newPathsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the resolved XDG search paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPaths(cmd.OutOrStdout())
		},
	}
}

func runPaths(out io.Writer) error {
	result := newAppService().SearchPaths()
	fmt.Fprintf(out, "config home:      %s\n", result.ConfigHome)
	fmt.Fprintf(out, "config dirs:      %s\n", joinOrDash(result.ConfigDirs))
	fmt.Fprintf(out, "data home:        %s\n", result.DataHome)
	fmt.Fprintf(out, "data dirs:        %s\n", joinOrDash(result.DataDirs))
	fmt.Fprintf(out, "application dirs: %s\n", joinOrDash(result.ApplicationDirs))
	fmt.Fprintf(out, "user mimeapps:    %s\n", result.UserMimeapps)
	fmt.Fprintln(out, "system mimeapps:")
	for _, path := range result.SystemMimeapps {
		fmt.Fprintf(out, "- %s\n", path)
	}
	return nil
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ":")
}
