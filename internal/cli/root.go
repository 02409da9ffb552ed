package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/WallHang/internal/project"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the wallhang CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Command results are written to
// out and log lines to logOut.
func NewRootCommand(out, logOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "wallhang",
		Short:        "WallHang plans picture walls",
		Long:         `WallHang arranges picture frames on a wall without overlaps and produces hanging plans with exact hook positions.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = withLogger(ctx, newLogger(logOut, level))

			cfg, err := project.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetOut(out)
	root.SetErr(logOut)
	root.SetVersionTemplate(fmt.Sprintf("wallhang %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", project.DefaultConfigPath(), "config file")

	root.AddCommand(newPlaceCmd())
	root.AddCommand(newMoveCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newExportCmd())

	return root
}
