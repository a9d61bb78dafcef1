package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationError reports the input fields that failed validation. It is
// returned before any store access; a request that fails validation is never
// partially applied.
type ValidationError struct {
	Fields []string `json:"fields"`
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

// CreateInvestmentInput carries the fields required to record a new investment
type CreateInvestmentInput struct {
	CompanyName   string          `json:"company_name"`
	TickerSymbol  string          `json:"ticker_symbol"`
	Shares        int             `json:"shares"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	PurchaseDate  Date            `json:"purchase_date"`
}

// Validate checks every field rule and returns a ValidationError listing all
// violations, or nil when the input is acceptable.
func (in *CreateInvestmentInput) Validate() error {
	var fields []string
	if strings.TrimSpace(in.CompanyName) == "" {
		fields = append(fields, "Company name is required")
	}
	if strings.TrimSpace(in.TickerSymbol) == "" {
		fields = append(fields, "Ticker symbol is required")
	}
	if in.Shares <= 0 {
		fields = append(fields, "Number of shares must be a positive integer")
	}
	if !in.PurchasePrice.IsPositive() {
		fields = append(fields, "Purchase price must be positive")
	}
	if in.PurchaseDate.IsZero() {
		fields = append(fields, "Purchase date is required")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// UpdateInvestmentInput carries a sparse update: only non-nil fields are
// applied, everything else keeps its prior value.
type UpdateInvestmentInput struct {
	ID            int              `json:"id"`
	CompanyName   *string          `json:"company_name,omitempty"`
	TickerSymbol  *string          `json:"ticker_symbol,omitempty"`
	Shares        *int             `json:"shares,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	PurchaseDate  *Date            `json:"purchase_date,omitempty"`
}

// Validate checks the id and applies the create-field rules to any field that
// is present.
func (in *UpdateInvestmentInput) Validate() error {
	var fields []string
	if in.ID <= 0 {
		fields = append(fields, "id is required")
	}
	if in.CompanyName != nil && strings.TrimSpace(*in.CompanyName) == "" {
		fields = append(fields, "Company name is required")
	}
	if in.TickerSymbol != nil && strings.TrimSpace(*in.TickerSymbol) == "" {
		fields = append(fields, "Ticker symbol is required")
	}
	if in.Shares != nil && *in.Shares <= 0 {
		fields = append(fields, "Number of shares must be a positive integer")
	}
	if in.PurchasePrice != nil && !in.PurchasePrice.IsPositive() {
		fields = append(fields, "Purchase price must be positive")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// GetInvestmentByIDInput identifies a single investment
type GetInvestmentByIDInput struct {
	ID int `json:"id"`
}

func (in *GetInvestmentByIDInput) Validate() error {
	if in.ID <= 0 {
		return &ValidationError{Fields: []string{"id is required"}}
	}
	return nil
}

// DeleteInvestmentInput identifies the investment to remove
type DeleteInvestmentInput struct {
	ID int `json:"id"`
}

func (in *DeleteInvestmentInput) Validate() error {
	if in.ID <= 0 {
		return &ValidationError{Fields: []string{"id is required"}}
	}
	return nil
}
