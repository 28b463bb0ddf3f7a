package cmd

import (
	"context"
	"fmt"

	"github.com/vibast-solutions/ms-go-authn/config"

	"github.com/spf13/cobra"
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete expired refresh and verification tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err = configureLogging(cfg); err != nil {
			return err
		}

		a, err := buildApp(ctx, cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		refresh, verification, err := a.auth.PurgeExpired(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("refresh_tokens_deleted: %d\n", refresh)
		fmt.Printf("verification_tokens_deleted: %d\n", verification)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(purgeCmd)
}
