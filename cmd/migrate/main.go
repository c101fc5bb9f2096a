package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bookclub-backend/internal/config"
	"bookclub-backend/internal/infrastructure/database"
	"bookclub-backend/pkg/logger"
)

var (
	// Global flags
	dbURL   string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the bookclub database schema",
	Long: `Applies the SQL migrations embedded in the binary.

Connection settings come from --db or, when omitted, from the same
DB_* environment variables the API reads (a .env file is honoured).

Examples:
  migrate up                                     # apply pending migrations
  migrate status                                 # list applied and pending versions
  migrate up --db postgres://u:p@localhost/bookclub?sslmode=disable`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "info"
		if verbose {
			level = "debug"
		}
		logger.Init(os.Getenv("APP_ENV"), level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database connection URL (defaults to DB_* environment variables)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(upCmd, statusCmd)
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("migrate failed", err)
		os.Exit(1)
	}
}

// openMigrator connects with --db or the environment configuration
func openMigrator() (*database.Migrator, error) {
	dsn := dbURL
	if dsn == "" {
		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return nil, err
		}
		dsn = database.NewPostgresDB(dbConfig).ConnectionString()
	}
	return database.OpenMigrator(dsn)
}
