package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dileepkakara/portfolio/internal/client"
	"github.com/dileepkakara/portfolio/internal/config"
	"github.com/dileepkakara/portfolio/internal/ws"
)

func newMessagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Contact message commands",
	}
	cmd.AddCommand(newWatchCmd())
	return cmd
}

func newWatchCmd() *cobra.Command {
	var apiURL, email, password string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print contact messages as they arrive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiURL == "" {
				cfg, err := config.LoadWeb()
				if err != nil {
					return err
				}
				apiURL = cfg.APIBaseURL
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			api := client.New(apiURL)
			token, err := api.Login(ctx, email, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			return watch(ctx, api.WithToken(token), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&apiURL, "api", "", "API base URL (default $API_BASE_URL)")
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func watch(ctx context.Context, api *client.Client, out io.Writer) error {
	err := api.WatchMessages(ctx, func(ev ws.MessageEvent) error {
		_, err := fmt.Fprintln(out, formatEvent(ev))
		return err
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func formatEvent(ev ws.MessageEvent) string {
	m := ev.Message
	if ev.Type == ws.EventMessageDeleted {
		return fmt.Sprintf("- %s", m.ID)
	}
	line := fmt.Sprintf("+ %s  %s <%s>", m.ID, m.Name, m.Email)
	if m.Phone != "" {
		line += " " + m.Phone
	}
	return line + ": " + m.Message
}
