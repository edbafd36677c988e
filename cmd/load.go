package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seedkit/hrseed/internal/config"
	"github.com/seedkit/hrseed/internal/dberr"
	"github.com/seedkit/hrseed/internal/loader"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Create the HR tables and load the seed batch",
	Long: `Create the departments and employees tables and insert the fixed
seed rows, all inside a single transaction.

If either table already exists the load stops with a schema conflict. Run
'hrseed reset' first, or pass --force to drop and recreate in one go.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		ctx := context.Background()

		l, err := loader.New(ctx, cfg)
		if err != nil {
			return err
		}
		defer l.Close()

		force, _ := cmd.Flags().GetBool("force")
		if force {
			if err := l.Reset(ctx, true); err != nil {
				return fmt.Errorf("failed to reset before load: %w", err)
			}
		}

		color.Cyan("🌱 Loading HR seed data (%s)...", cfg.Database.Provider)
		if err := l.Load(ctx); err != nil {
			var conflict *dberr.SchemaConflictError
			if errors.As(err, &conflict) {
				color.Red("❌ %v", conflict)
				color.Yellow("💡 Run 'hrseed reset' first, or use 'hrseed load --force'")
			}
			return err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}
