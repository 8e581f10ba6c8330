// Package cmd provides the root command and CLI setup for importfix.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/getcord/importfix/internal/adapter"
	"github.com/getcord/importfix/internal/controller"
	"github.com/getcord/importfix/internal/domain"
	m "github.com/getcord/importfix/internal/model"
)

// workflow overrides the pipeline built from flags; tests replace it with a mock.
var workflow domain.Workflow

var compatibleFlag bool
var rootDirFlag string
var parallelFlag int
var shardFlag string
var excludeFlags []string
var summaryFlag bool

const rootLongDescription = `importfix rewrites import statements so that every import of a local
module names an existing file, and converts legacy CommonJS-era idioms
into their ES module equivalents.

Without arguments it walks the repository's source roots and processes
every .ts and .tsx file. Explicit files (or directories) limit the run.

For each import whose path starts with ./, ../ or a known root
(@cord-sdk/, server/, common/, ...) the first existing candidate among
.ts, .tsx, /index.ts, /index.tsx, .js and .d.ts is appended. Imports with
no candidate are reported as "Could not resolve import: <path>" and left
untouched. Files are only written when something changed.

Use --compatible to keep the legacy idioms and only fix import paths.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "importfix [files...]",
		Short:        "Resolve import paths and rewrite legacy module syntax",
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runArgs, err := buildRunArgs(args)
			if err != nil {
				return err
			}

			runArgs.Summary = summaryFlag

			return workflowFor(cmd).Run(cmd.Context(), runArgs)
		},
	}
	addSharedFlags(cmd)
	cmd.Flags().BoolVar(&summaryFlag, "summary", false, "print a table of rewritten files")

	return cmd
}

func addSharedFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&compatibleFlag, "compatible", false, "only resolve import paths; skip legacy syntax rewrites")
	cmd.PersistentFlags().StringVar(&rootDirFlag, "root", ".", "repository root that namespaces and source roots are relative to")
	cmd.PersistentFlags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of files processed concurrently")
	cmd.PersistentFlags().StringVarP(&shardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.PersistentFlags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
}

func buildRunArgs(args []string) (domain.RunArgs, error) {
	if parallelFlag < 1 {
		return domain.RunArgs{}, fmt.Errorf("--parallel must be at least 1, got %d", parallelFlag)
	}

	shardIndex, totalShards := parseShardFlag(shardFlag)

	return domain.RunArgs{
		Paths:           parsePaths(args),
		Exclude:         excludeFlags,
		Mode:            m.Mode{Compatible: compatibleFlag},
		Threads:         parallelFlag,
		ShardIndex:      shardIndex,
		TotalShardCount: totalShards,
	}, nil
}

// workflowFor returns the overriding workflow or builds one for the current flags.
func workflowFor(cmd *cobra.Command) domain.Workflow {
	if workflow != nil {
		return workflow
	}

	cfg := m.DefaultConfig().WithRoot(m.Path(rootDirFlag))
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewDefaultWorkflow(cfg, adapter.NewLocalSourceFSAdapter(), ui)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
