package migrate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xiaomi388/result-management/pkg/persistence"
)

var (
	fromBackend string
	toBackend   string
	sourcePath  string
	destPath    string
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "migrate the roster between storage backends",
	Long:  `Migrate the roster from one storage backend to another (e.g. json to sqlite).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd)
	},
}

func init() {
	MigrateCmd.Flags().StringVar(&fromBackend, "from", "json", "source backend (json or sqlite)")
	MigrateCmd.Flags().StringVar(&toBackend, "to", "sqlite", "destination backend (json or sqlite)")
	MigrateCmd.Flags().StringVar(&sourcePath, "source", "", "source file path (defaults based on backend)")
	MigrateCmd.Flags().StringVar(&destPath, "dest", "", "destination file path (defaults based on backend)")
}

func runMigrate(cmd *cobra.Command) error {
	if fromBackend == toBackend && sourcePath == destPath {
		return fmt.Errorf("source and destination are the same: %s", fromBackend)
	}

	srcPath, err := persistence.ResolvePath(fromBackend, sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open source store: %w", err)
	}
	// A missing source would load as an empty roster and wipe the destination.
	if _, err := os.Stat(srcPath); err != nil {
		return fmt.Errorf("failed to open source store: %w", err)
	}

	src, err := persistence.NewStoreWithBackend(fromBackend, srcPath)
	if err != nil {
		return fmt.Errorf("failed to open source store: %w", err)
	}
	defer src.Close()

	dst, err := persistence.NewStoreWithBackend(toBackend, destPath)
	if err != nil {
		return fmt.Errorf("failed to open destination store: %w", err)
	}
	defer dst.Close()

	roster, err := src.LoadRoster()
	if err != nil {
		return fmt.Errorf("failed to load from source: %w", err)
	}

	if err := dst.DumpRoster(roster); err != nil {
		return fmt.Errorf("failed to write to destination: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Successfully migrated %d student(s) in %d class(es) from %s to %s.\n",
		roster.Students(), len(roster.Classes()), src.Path(), dst.Path())
	fmt.Fprintln(out, "Update your config.yaml to use the new backend:")
	fmt.Fprintln(out, "  storage:")
	fmt.Fprintf(out, "    backend: %s\n", toBackend)
	return nil
}
