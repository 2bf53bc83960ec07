package version

import (
	"fmt"
	"runtime"

	"github.com/fuzzland/tintin/internal/buildinfo"
	"github.com/spf13/cobra"
)

var (
	flagShort bool
	flagJSON  bool
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagShort || !flagJSON {
			// Exactly one line, stable for scripting.
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "tintin %s\n", buildinfo.Summary())
			return err
		}

		out := map[string]any{
			"version": buildinfo.Version,
			"commit":  buildinfo.Commit,
			"date":    buildinfo.Date,
			"go":      runtime.Version(),
			"go_os":   runtime.GOOS,
			"go_arch": runtime.GOARCH,
		}
		return encodeJSON(cmd.OutOrStdout(), out)
	},
}

func init() {
	VersionCmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	VersionCmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
}
