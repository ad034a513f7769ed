package main

import (
	"context"
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/skynet2/moneymate-scraper/pkg/duplicatecleaner"
	"github.com/skynet2/moneymate-scraper/pkg/gmail"
	"github.com/skynet2/moneymate-scraper/pkg/moneymate"
	"github.com/skynet2/moneymate-scraper/pkg/parser"
	"github.com/skynet2/moneymate-scraper/pkg/printer"
	"github.com/skynet2/moneymate-scraper/pkg/processor"
	"github.com/skynet2/moneymate-scraper/pkg/quarantine"
)

func main() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	logger := newLogger(cfg.LogLevel)
	ctx := logger.WithContext(context.Background())

	root := &cobra.Command{
		Use:          "scraper",
		Short:        "Scrape receipt emails from Gmail into MoneyMate",
		SilenceUsage: true,
	}

	root.AddCommand(runCmd(ctx, cfg))
	root.AddCommand(quarantineCmd(ctx, cfg))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	return zerolog.New(os.Stderr).Level(parsed).With().Timestamp().Logger()
}

func runCmd(ctx context.Context, cfg Config) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch receipts, parse them and submit new transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := quarantine.NewStore(cfg.QuarantineDBPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			mailbox := gmail.NewClient(cfg.GoogleCredentialsPath, cfg.GoogleTokenPath)
			if err = mailbox.Authenticate(ctx); err != nil {
				return err
			}

			query := cfg.GmailQuery
			if query == "" {
				query = gmail.DefaultQuery
			}

			proc := processor.NewProcessor(
				mailbox,
				parser.NewPipeline(),
				moneymate.NewMoneyMate(cfg.MoneyMateAPIKey, cfg.MoneyMateAPIURL, req.DefaultClient()),
				store,
				duplicatecleaner.NewDuplicateCleaner(store),
				processor.Options{
					Query:       query,
					MaxResults:  cfg.GmailMaxResults,
					Concurrency: cfg.Concurrency,
					DryRun:      dryRun,
				},
			)

			summary, err := proc.Run(ctx)
			if err != nil {
				return err
			}

			pr := printer.NewPrinter()
			if dryRun {
				fmt.Println(pr.Dry(ctx, summary))
			} else {
				fmt.Println(pr.Stat(ctx, summary))
			}

			if len(summary.Errors) > 0 {
				fmt.Println()
				fmt.Println(pr.Errors(ctx, summary))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and print without submitting or quarantining")

	return cmd
}

func quarantineCmd(ctx context.Context, cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quarantine",
		Short: "Inspect or clear quarantined messages",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List quarantined messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := quarantine.NewStore(cfg.QuarantineDBPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			records, err := store.List(ctx)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println("Quarantine is empty.")
				return nil
			}

			for _, record := range records {
				fmt.Printf("%s  %s  [%s]  %s\n  %s\n",
					record.CreatedAt.Format("2006-01-02 15:04"),
					record.EmailID,
					record.Source,
					record.RawSubject,
					record.Reason,
				)
			}

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all quarantined messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := quarantine.NewStore(cfg.QuarantineDBPath)
			if err != nil {
				return err
			}
			defer func() {
				_ = store.Close()
			}()

			return store.Clear(ctx)
		},
	})

	return cmd
}
