package cli

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dileepkakara/portfolio/internal/config"
	"github.com/dileepkakara/portfolio/internal/database"
	"github.com/dileepkakara/portfolio/internal/logging"
	"github.com/dileepkakara/portfolio/internal/routes"
	"github.com/dileepkakara/portfolio/internal/ws"
)

func newServeCmd() *cobra.Command {
	var seedDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API server",
		Long: `Connects to the configured database, migrates it, seeds the admin account
and serves the REST API with the live message stream.

With --seed the content directory is imported into empty tables first.`,
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

			if seedDir != "" {
				if _, err := seedFrom(db, seedDir, log); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			hubs := ws.NewHubs(log.Named("ws"))
			srv := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           routes.NewRouter(db, cfg, hubs, log),
				ReadHeaderTimeout: readHeaderTimeout,
			}
			return runHTTP(ctx, srv, log, hubs.Run)
		},
	}
	cmd.Flags().StringVar(&seedDir, "seed", "", "content directory to import before serving")
	return cmd
}

func openDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := database.Setup(db, cfg, log); err != nil {
		closeDatabase(db, log)
		return nil, err
	}
	return db, nil
}

func closeDatabase(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("close database", zap.Error(err))
	}
}
