package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"catalogapi/internal/infrastructure/database"
	"catalogapi/internal/infrastructure/store"
	"catalogapi/internal/seed"
	"catalogapi/pkg/config"
	"catalogapi/pkg/logger"
	"catalogapi/pkg/sumton"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if cfg.DatabaseDriver == store.DriverFirestore {
				fmt.Fprintln(cmd.OutOrStdout(), "Firestore needs no migrations")
				return nil
			}

			dsn := cfg.DatabasePath
			if cfg.DatabaseDriver == database.DriverPostgres {
				dsn = cfg.DatabaseURL
			}

			db, err := database.Open(cfg.DatabaseDriver, dsn)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(db, cfg.DatabaseDriver); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s schema is up to date\n", cfg.DatabaseDriver)
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	var (
		count  int
		reset  bool
		randSeed int64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the store with generated products",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("--count must not be negative, got %d", count)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			st, err := store.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			summary, err := seed.Run(cmd.Context(), st.Products, seed.NewGenerator(randSeed), count, reset)
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", seed.DefaultCount, "Number of products to generate")
	cmd.Flags().BoolVar(&reset, "reset", true, "Delete existing products first")
	cmd.Flags().Int64Var(&randSeed, "seed", time.Now().UnixNano(), "Random seed, for reproducible catalogs")

	return cmd
}

func newSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum N",
		Short: "Print 1 + 2 + ... + N computed three ways",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("N must be an integer: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "iterative:   %d\n", sumton.Iterative(n))
			fmt.Fprintf(out, "closed form: %d\n", sumton.ClosedForm(n))
			if n > sumton.MaxRecursiveN {
				fmt.Fprintf(out, "recursive:   skipped (n exceeds depth limit %d)\n", sumton.MaxRecursiveN)
			} else {
				fmt.Fprintf(out, "recursive:   %d\n", sumton.Recursive(n))
			}
			return nil
		},
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	logger.Setup(cfg.Environment, io.Discard)
	return cfg, nil
}

func printSummary(out io.Writer, summary *seed.Summary) {
	if summary.Deleted > 0 {
		fmt.Fprintf(out, "✓ Cleared %d existing products\n", summary.Deleted)
	}
	fmt.Fprintf(out, "✓ Inserted %d products\n\n", summary.Inserted)

	fmt.Fprintln(out, "Catalog statistics:")
	fmt.Fprintln(out, "-----------------------------------")
	fmt.Fprintf(out, "Total inventory: %d units\n", summary.TotalQuantity)
	fmt.Fprintf(out, "Average price:   $%.2f\n", summary.AveragePrice)
	fmt.Fprintln(out, "-----------------------------------")

	categories := make([]string, 0, len(summary.ByCategory))
	for category := range summary.ByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		fmt.Fprintf(out, "%-20s : %d products\n", category, summary.ByCategory[category])
	}
}
