package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tmfowler/investment-tracker/internal/models"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// CreateInvestment inserts a new investment row. The ticker symbol is stored
// upper-case and the price is rounded to two fractional digits to match the
// NUMERIC(10,2) column. The store assigns id and created_at.
func (db *DB) CreateInvestment(in *models.CreateInvestmentInput) (*models.Investment, error) {
	query := `
		INSERT INTO investments (company_name, ticker_symbol, shares, purchase_price, purchase_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	inv := &models.Investment{
		CompanyName:   in.CompanyName,
		TickerSymbol:  strings.ToUpper(in.TickerSymbol),
		Shares:        in.Shares,
		PurchasePrice: in.PurchasePrice.Round(2),
		PurchaseDate:  in.PurchaseDate,
	}

	err := db.conn.QueryRow(query,
		inv.CompanyName, inv.TickerSymbol, inv.Shares, inv.PurchasePrice, inv.PurchaseDate,
	).Scan(&inv.ID, &inv.CreatedAt)

	if err != nil {
		log.Printf("investment insert failed: %v", err)
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}
	return inv, nil
}

// GetInvestmentByID retrieves an investment by id. A missing id is not an
// error: the result is (nil, nil).
func (db *DB) GetInvestmentByID(id int) (*models.Investment, error) {
	query := `
		SELECT id, company_name, ticker_symbol, shares, purchase_price, purchase_date, created_at
		FROM investments
		WHERE id = $1
	`
	inv, err := scanInvestment(db.conn.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Printf("investment lookup failed: %v", err)
		return nil, fmt.Errorf("failed to get investment: %w", err)
	}
	return inv, nil
}

// ListInvestments retrieves all investments ordered by creation time, newest
// first. Rows sharing a created_at come back in store-default order, which is
// not deterministic. An empty table yields an empty slice, not an error.
func (db *DB) ListInvestments() ([]*models.Investment, error) {
	query := `
		SELECT id, company_name, ticker_symbol, shares, purchase_price, purchase_date, created_at
		FROM investments
		ORDER BY created_at DESC
	`
	rows, err := db.conn.Query(query)
	if err != nil {
		log.Printf("investment list failed: %v", err)
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}
	defer rows.Close()

	investments := []*models.Investment{}
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			log.Printf("investment scan failed: %v", err)
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		investments = append(investments, inv)
	}
	if err := rows.Err(); err != nil {
		log.Printf("investment list failed: %v", err)
		return nil, fmt.Errorf("failed to read investments: %w", err)
	}

	return investments, nil
}

// UpdateInvestment applies the fields present in the input to the row
// matching input.ID; absent fields keep their prior values. An input carrying
// only the id is a no-op that still returns the current row. A missing id is
// not an error: the result is (nil, nil).
func (db *DB) UpdateInvestment(in *models.UpdateInvestmentInput) (*models.Investment, error) {
	query := `
		UPDATE investments SET
			company_name = COALESCE($2, company_name),
			ticker_symbol = COALESCE($3, ticker_symbol),
			shares = COALESCE($4, shares),
			purchase_price = COALESCE($5, purchase_price),
			purchase_date = COALESCE($6, purchase_date)
		WHERE id = $1
		RETURNING id, company_name, ticker_symbol, shares, purchase_price, purchase_date, created_at
	`
	var ticker *string
	if in.TickerSymbol != nil {
		t := strings.ToUpper(*in.TickerSymbol)
		ticker = &t
	}
	var price *decimal.Decimal
	if in.PurchasePrice != nil {
		p := in.PurchasePrice.Round(2)
		price = &p
	}

	inv, err := scanInvestment(db.conn.QueryRow(query,
		in.ID, in.CompanyName, ticker, in.Shares, price, in.PurchaseDate,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Printf("investment update failed: %v", err)
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}
	return inv, nil
}

// DeleteInvestment removes the row matching id. Returns true if a row was
// deleted, false if none matched; a missing id is never an error.
func (db *DB) DeleteInvestment(id int) (bool, error) {
	result, err := db.conn.Exec(`DELETE FROM investments WHERE id = $1`, id)
	if err != nil {
		log.Printf("investment delete failed: %v", err)
		return false, fmt.Errorf("failed to delete investment: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

func scanInvestment(row rowScanner) (*models.Investment, error) {
	var inv models.Investment
	var price string

	err := row.Scan(
		&inv.ID, &inv.CompanyName, &inv.TickerSymbol, &inv.Shares,
		&price, &inv.PurchaseDate, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	// NUMERIC comes back as text; convert to an exact decimal.
	inv.PurchasePrice, err = decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("failed to parse purchase price %q: %w", price, err)
	}

	return &inv, nil
}
