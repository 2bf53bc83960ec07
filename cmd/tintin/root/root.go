package root

import (
	"fmt"

	"github.com/fuzzland/tintin/cmd/tintin/version"
	"github.com/fuzzland/tintin/internal/greeting"
	"github.com/spf13/cobra"
)

var (
	flagName string
	flagJSON bool
)

// usageError marks command-line input errors so the entry point can exit
// with the conventional status 2.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) ExitCode() int { return 2 }

// NewRootCmd creates the root command for tintin. Running it without a
// subcommand prints the greeting report.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tintin",
		Short: "Print a greeting plus working directory, runtime and UTC time",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := greeting.NewReport(greeting.Options{Name: flagName})
			if err != nil {
				return err
			}
			if flagJSON {
				return greeting.WriteJSON(cmd.OutOrStdout(), report)
			}
			return greeting.Write(cmd.OutOrStdout(), report)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagName, "name", greeting.DefaultName, "Name to greet")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print the report as a JSON object")

	// Unknown or malformed flags print usage to stderr and exit 2.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprint(c.ErrOrStderr(), c.UsageString())
		return usageError{err}
	})

	// Subcommands
	cmd.AddCommand(version.VersionCmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
