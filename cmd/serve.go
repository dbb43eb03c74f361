package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Eursukkul/eventclub/config"
	"github.com/Eursukkul/eventclub/internal/consumer"
	"github.com/Eursukkul/eventclub/internal/server"
	"github.com/Eursukkul/eventclub/pkg/rabbitmq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := opts.cfg, opts.logger
			if port != "" {
				cfg.ServerPort = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := buildApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.close()

			if cfg.SchedulerBackend == config.SchedulerRabbitMQ {
				c, err := rabbitmq.NewConsumer(cfg.RabbitURL, logger)
				if err != nil {
					return err
				}
				defer c.Close()

				msgs, err := c.Consume()
				if err != nil {
					return err
				}
				consumer.NewReminderConsumer(a.dispatcher, logger).Start(ctx, msgs)
			}

			e := server.New(a.services, logger)

			errCh := make(chan error, 1)
			go func() {
				logger.Info("eventclub starting", zap.String("port", cfg.ServerPort))
				if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides SERVER_PORT)")
	return cmd
}
