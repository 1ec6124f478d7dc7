package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

const defaultSecret = "dev_secret_change_me"

func newHTTPCommand(o *rootOptions) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve the solver over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := o.loadWords()
			if err != nil {
				return err
			}
			if o.cfg.SessionSecret == defaultSecret {
				log.Warn().Msg("SESSION_SECRET is the development default")
			}

			srv := httpserver.New(list, store.NewMemoryStore(), httpserver.Options{
				Secret:    []byte(o.cfg.SessionSecret),
				TTL:       o.cfg.SessionTTL,
				MaxRounds: o.maxRounds,
			})
			log.Info().Str("port", port).Int("words", len(list)).Msg("starting solver http server")
			return srv.Start(":" + port)
		},
	}
	cmd.Flags().StringVar(&port, "port", o.cfg.Port, "listen port")
	return cmd
}
