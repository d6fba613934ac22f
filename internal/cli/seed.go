package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dileepkakara/portfolio/internal/config"
	"github.com/dileepkakara/portfolio/internal/database"
	"github.com/dileepkakara/portfolio/internal/logging"
)

func newSeedCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import skills, about and projects from a content directory",
		Long: `Reads skills.yaml, about.yaml and projects/*.md (YAML front matter plus a
markdown description) and inserts them into tables that are still empty.

Example:
  portfolio seed --dir ./content`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			db, err := openDatabase(cfg, log)
			if err != nil {
				return err
			}
			defer closeDatabase(db, log)

			report, err := seedFrom(db, dir, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d skills, %d projects, about: %t\n", report.Skills, report.Projects, report.About)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "content", "content directory")
	return cmd
}

func seedFrom(db *gorm.DB, dir string, log *zap.Logger) (database.SeedReport, error) {
	content, err := database.LoadContent(dir)
	if err != nil {
		return database.SeedReport{}, fmt.Errorf("load content: %w", err)
	}
	report, err := database.SeedContent(db, content, log)
	if err != nil {
		return report, fmt.Errorf("seed content: %w", err)
	}
	return report, nil
}
