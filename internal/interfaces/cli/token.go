package cli

import (
	"fmt"
	"time"

	"github.com/dicky/portfolio/internal/infrastructure/auth"
	"github.com/dicky/portfolio/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
		secret  string
		issuer  string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin bearer token",
		Long: `Mint an admin bearer token for the /api/v1/admin endpoints.

The signing secret and issuer come from the backend configuration
(config.toml or PORTFOLIO_JWT_SECRET) unless --secret is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jwtCfg, err := jwtConfig(secret, issuer)
			if err != nil {
				return err
			}
			issued, err := auth.NewJWTService(jwtCfg).IssueAdminToken(subject, ttl)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, issued.Token)
			fmt.Fprintf(out, "expires %s\n", issued.ExpiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "admin", "Token subject, usually the operator name")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (defaults to jwt.token_expiration)")
	cmd.Flags().StringVar(&secret, "secret", "", "Signing secret; skips loading the configuration")
	cmd.Flags().StringVar(&issuer, "issuer", defaultIssuer, "Issuer used together with --secret")
	return cmd
}

const defaultIssuer = "portfolio-api"

func jwtConfig(secret, issuer string) (config.JWTConfig, error) {
	if secret != "" {
		return config.JWTConfig{Secret: secret, Issuer: issuer, TokenExpiration: 24 * time.Hour}, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return config.JWTConfig{}, fmt.Errorf("load configuration: %w", err)
	}
	return cfg.JWT, nil
}
