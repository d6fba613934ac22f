package cli

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dileepkakara/portfolio/internal/client"
	"github.com/dileepkakara/portfolio/internal/config"
	"github.com/dileepkakara/portfolio/internal/logging"
	"github.com/dileepkakara/portfolio/internal/web"
)

func newWebCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "web",
		Short: "Run the public site and admin panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWeb()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			api := client.New(cfg.APIBaseURL, client.WithTimeout(cfg.APITimeout))
			site := web.New(cfg, api, log)
			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           site.Handler(),
				ReadHeaderTimeout: readHeaderTimeout,
			}
			err = runHTTP(ctx, srv, log)
			site.Wait()
			return err
		},
	}
}
