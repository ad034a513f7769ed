package main

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
