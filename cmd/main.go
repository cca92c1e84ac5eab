package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"book-query-explorer/configs"
	"book-query-explorer/internal/db"
	"book-query-explorer/internal/explorer"
	"book-query-explorer/internal/seed"
	"book-query-explorer/internal/utils"
)

const connectTimeout = 10 * time.Second

func main() {
	root := &cobra.Command{
		Use:           "book-query-explorer",
		Short:         "Run a fixed sequence of queries against the books collection",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConnection(runSequence)
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "seed",
			Short: "Drop the books collection and insert the demo dataset",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withConnection(runSeed)
			},
		},
		&cobra.Command{
			Use:   "run",
			Short: "Execute the query sequence",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withConnection(runSequence)
			},
		},
		&cobra.Command{
			Use:   "logs",
			Short: "Print unexported run logs and mark them exported",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withConnection(runLogDrain)
			},
		},
	)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

// withConnection loads config, opens the one client connection, runs fn,
// and releases the connection whether or not fn failed.
func withConnection(fn func(ctx context.Context, cfg configs.Config) error) error {
	cfg := configs.LoadConfig()

	ctx := context.Background()

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.Connect(connectCtx, cfg.MongoURI); err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := db.Disconnect(disconnectCtx); err != nil {
			log.Printf("Disconnect failed: %v", err)
		}
	}()

	return fn(ctx, cfg)
}

func runSequence(ctx context.Context, cfg configs.Config) error {
	books := db.GetCollection(cfg.DBName, cfg.BooksCollection)
	runLog := utils.Logger{Collection: db.GetCollection(cfg.DBName, cfg.RunLogsCollection)}

	return explorer.New(books, runLog).Run(ctx)
}

func runSeed(ctx context.Context, cfg configs.Config) error {
	books := db.GetCollection(cfg.DBName, cfg.BooksCollection)

	inserted, err := seed.Run(ctx, books)
	if err != nil {
		return err
	}
	fmt.Printf("Seeded %d books into %s.%s\n", inserted, cfg.DBName, cfg.BooksCollection)
	return nil
}

func runLogDrain(ctx context.Context, cfg configs.Config) error {
	drainer := explorer.LogDrainer{Coll: db.GetCollection(cfg.DBName, cfg.RunLogsCollection)}

	drained, err := drainer.Drain(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d run log entries\n", drained)
	return nil
}
