package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// purchase_price crosses the wire as a JSON number, not a quoted string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Investment event type constants
const (
	EventInvestmentCreated = "INVESTMENT_CREATED"
	EventInvestmentUpdated = "INVESTMENT_UPDATED"
	EventInvestmentDeleted = "INVESTMENT_DELETED"
)

// Investment represents a single recorded stock purchase
type Investment struct {
	ID            int             `json:"id"`
	CompanyName   string          `json:"company_name"`
	TickerSymbol  string          `json:"ticker_symbol"`
	Shares        int             `json:"shares"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	PurchaseDate  Date            `json:"purchase_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// InvestmentEvent represents a Kafka event for investment changes
type InvestmentEvent struct {
	EventType  string      `json:"event_type"`
	Investment *Investment `json:"investment,omitempty"`
	ID         int         `json:"id"`
	Timestamp  time.Time   `json:"timestamp"`
}
