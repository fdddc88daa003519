package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
)

var errNoSecret = errors.New("JWT_SECRET is not set")

// TokenCmd creates the 'token' command, which mints API bearer tokens.
func TokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the generator API",
		Long: `Mint a bearer token for the generator API, signed with JWT_SECRET.
The secret is read from the environment or a .env file in the working directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.AuthEnabled() {
				return errNoSecret
			}
			if !cmd.Flags().Changed("ttl") {
				ttl = cfg.JWTExpiry
			}

			token, err := crypto.GenerateToken(subject, cfg.JWTSecret, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Client the token is issued to")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime (default: JWT_EXPIRY)")
	cmd.MarkFlagRequired("subject")
	return cmd
}
