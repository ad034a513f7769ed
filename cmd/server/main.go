package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/gorilla/mux"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"

	"github.com/skynet2/moneymate-scraper/pkg/duplicatecleaner"
	"github.com/skynet2/moneymate-scraper/pkg/gmail"
	"github.com/skynet2/moneymate-scraper/pkg/moneymate"
	"github.com/skynet2/moneymate-scraper/pkg/parser"
	"github.com/skynet2/moneymate-scraper/pkg/printer"
	"github.com/skynet2/moneymate-scraper/pkg/processor"
	"github.com/skynet2/moneymate-scraper/pkg/quarantine"
)

var apiKey = os.Getenv("API_KEY")

type Config struct {
	GoogleCredentialsPath string `env:"GOOGLE_CREDENTIALS_PATH" envDefault:"credentials.json"`
	GoogleTokenPath       string `env:"GOOGLE_TOKEN_PATH" envDefault:"token.json"`

	MoneyMateAPIURL string `env:"MONEYMATE_API_URL" envDefault:"http://localhost:3000/api"`
	MoneyMateAPIKey string `env:"MONEYMATE_API_KEY"`

	GmailQuery      string `env:"GMAIL_QUERY"`
	GmailMaxResults int64  `env:"GMAIL_MAX_RESULTS" envDefault:"20"`

	Concurrency      int    `env:"CONCURRENCY" envDefault:"4"`
	QuarantineDBPath string `env:"QUARANTINE_DB_PATH" envDefault:"quarantine.db"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	store, err := quarantine.NewStore(cfg.QuarantineDBPath)
	if err != nil {
		panic(err)
	}

	mailbox := gmail.NewClient(cfg.GoogleCredentialsPath, cfg.GoogleTokenPath)
	if err = mailbox.Authenticate(ctx); err != nil {
		panic(err)
	}

	query := cfg.GmailQuery
	if query == "" {
		query = gmail.DefaultQuery
	}

	processorSvc := processor.NewProcessor(
		mailbox,
		parser.NewPipeline(),
		moneymate.NewMoneyMate(cfg.MoneyMateAPIKey, cfg.MoneyMateAPIURL, req.DefaultClient()),
		store,
		duplicatecleaner.NewDuplicateCleaner(store),
		processor.Options{
			Query:       query,
			MaxResults:  cfg.GmailMaxResults,
			Concurrency: cfg.Concurrency,
		},
	)

	r := mux.NewRouter()

	handle := NewHandler(processorSvc, printer.NewPrinter())
	r.Handle("/api/scrape", handle).Methods(http.MethodPost)

	listenAddr := ":8080"
	if val, ok := os.LookupEnv("FUNCTIONS_CUSTOMHANDLER_PORT"); ok {
		listenAddr = ":" + val
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         listenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	panic(srv.ListenAndServe())
}
