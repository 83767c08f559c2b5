package cmd

import (
	"fmt"

	"mimi/pkg/logging"
	"mimi/pkg/structurize"
	"mimi/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// baseLogger is the logger handed in by main. The root command uses it as-is
// unless --verbose asks for a debug-level replacement.
var baseLogger *zap.Logger

// RootCmd is the base command. It runs the whole structurize pipeline.
var RootCmd = &cobra.Command{
	Use:   "mimi <prev_dir> <hq_flat_dir> <hq_struct_dir>",
	Short: "Structurize a flat media collection from curated miniatures",
	Long: `mimi mirrors a manually curated preview directory tree and fills it with
the corresponding high-quality files from a flat source directory.

Sort lightweight previews into event folders, optionally moving the keepers
into a "sel" subfolder per event, then run mimi to produce a structured
delivery directory of the full-quality originals.`,
	Args:          cobra.ExactArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		runArgs := structurize.Arguments{
			PreviewDir: args[0],
			FlatDir:    args[1],
			OutputDir:  args[2],
		}

		var err error
		if runArgs.SelOnly, err = flags.GetBool("sel-only"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if runArgs.LevelUpSel, err = flags.GetBool("level-up-sel"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if runArgs.MoveToTopLevel, err = flags.GetBool("move-to-top-level"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if runArgs.AddPrefix, err = flags.GetBool("add-prefix"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if runArgs.Force, err = flags.GetBool("force"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if runArgs.SelName, err = flags.GetString("sel-name"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if runArgs.StripPrefixLen, err = flags.GetInt("strip-prefix"); err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		verbose, err := flags.GetBool("verbose")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		logger := baseLogger
		if verbose || logger == nil {
			logger, err = logging.Setup(verbose, "mimi", version.Get().Version)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync()
		}

		_, err = structurize.Execute(runArgs, logger)
		return err
	},
}

func init() {
	RootCmd.Flags().BoolP("sel-only", "s", false, `Keep only content of selection subdirectories`)
	RootCmd.Flags().BoolP("level-up-sel", "l", false, `Move content of selection folders one level up`)
	RootCmd.Flags().BoolP("move-to-top-level", "t", false, `Place every file directly under the output root`)
	RootCmd.Flags().BoolP("add-prefix", "p", false, `Add the event directory as a filename prefix`)
	RootCmd.Flags().BoolP("verbose", "v", false, `Display more information on what is happening`)
	RootCmd.Flags().BoolP("force", "f", false, `Remove the output directory first if it exists`)
	RootCmd.Flags().String("sel-name", structurize.DefaultSelName, `Name of the selection marker directory`)
	RootCmd.Flags().Int("strip-prefix", 0, `Strip this many leading characters from preview filenames when matching HQ sources`)
}

// Execute runs the root command with the given logger.
func Execute(logger *zap.Logger) error {
	baseLogger = logger
	return RootCmd.Execute()
}
