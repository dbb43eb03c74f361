package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Eursukkul/eventclub/internal/consumer"
	"github.com/Eursukkul/eventclub/pkg/rabbitmq"
	"github.com/spf13/cobra"
)

func newWorkerCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Deliver due reminders from RabbitMQ",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := opts.cfg, opts.logger
			if !cfg.RabbitEnabled {
				return fmt.Errorf("worker requires RABBITMQ_ENABLED=true")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			dispatcher, err := newDispatcher(cfg, logger)
			if err != nil {
				return err
			}

			c, err := rabbitmq.NewConsumer(cfg.RabbitURL, logger)
			if err != nil {
				return err
			}
			defer c.Close()

			msgs, err := c.Consume()
			if err != nil {
				return err
			}

			logger.Info("reminder worker started")
			consumer.NewReminderConsumer(dispatcher, logger).Run(ctx, msgs)
			return nil
		},
	}
}
