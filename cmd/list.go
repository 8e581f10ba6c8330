package cmd

import (
	"github.com/spf13/cobra"
)

const listLongDescription = `List the files importfix would rewrite, without writing anything.

Takes the same arguments and flags as the root command and prints a table
of files that would change, with the number of affected lines and
unresolved imports per file. Unresolved imports are reported as usual.`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [files...]",
		Short: "Show which files would be rewritten",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			runArgs, err := buildRunArgs(args)
			if err != nil {
				return err
			}

			return workflowFor(cmd).Estimate(cmd.Context(), runArgs)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
