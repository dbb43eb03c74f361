package cmd

import (
	"github.com/Eursukkul/eventclub/internal/clock"
	"github.com/Eursukkul/eventclub/internal/seed"
	"github.com/Eursukkul/eventclub/pkg/database"
	"github.com/spf13/cobra"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo events, registrations and an announcement into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(opts.cfg)
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			_, err = seed.Run(cmd.Context(), db, clock.Real().Now(), opts.logger)
			return err
		},
	}
}
