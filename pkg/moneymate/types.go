package moneymate

import "time"

type CreateTransactionRequest struct {
	Source          string    `json:"source"`
	Description     string    `json:"description"`
	Amount          string    `json:"amount"`
	Currency        string    `json:"currency"`
	TransactionDate time.Time `json:"transaction_date"`
	EmailID         string    `json:"email_id"`
	RawSubject      string    `json:"raw_subject"`
}
