// internal/domain/expense.go
package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal" // For precise monetary amounts

	"spendtrack/internal/util"
)

// Field bounds for expense columns. Amount is NUMERIC(10, 2) in the DB:
// at most 10 significant digits with at most 2 of them fractional.
const (
	MaxTitleLength    = 100
	MaxCategoryLength = 50

	amountMaxDigits   = 10
	amountMaxDecimals = 2
)

// amountLimit is 10^(amountMaxDigits-amountMaxDecimals); any amount with
// an absolute value reaching it has more than 8 integer digits.
var amountLimit = decimal.New(1, amountMaxDigits-amountMaxDecimals)

// Expense represents a single expense record owned by one user.
type Expense struct {
	ID        int64           `db:"id" json:"id"`                 // Primary key, BIGSERIAL in DB
	UserID    int64           `db:"user_id" json:"user_id"`       // Owning user, never client-settable
	Title     string          `db:"title" json:"title"`           // Short description
	Amount    decimal.Decimal `db:"amount" json:"amount"`         // NUMERIC(10, 2) in DB
	Category  string          `db:"category" json:"category"`     // Spending category
	Date      Date            `db:"date" json:"date"`             // Calendar date, no time component
	CreatedAt time.Time       `db:"created_at" json:"created_at"` // Server-assigned, immutable
}

// NewExpense creates a new Expense owned by userID.
func NewExpense(userID int64, title string, amount decimal.Decimal, category string, date Date) *Expense {
	return &Expense{
		UserID:    userID,
		Title:     title,
		Amount:    amount,
		Category:  category,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks field constraints and returns util.FieldErrors on violation.
func (e *Expense) Validate() error {
	fieldErrs := util.FieldErrors{}
	if strings.TrimSpace(e.Title) == "" {
		fieldErrs["title"] = "this field is required"
	} else if len(e.Title) > MaxTitleLength {
		fieldErrs["title"] = "must be at most 100 characters"
	}
	if strings.TrimSpace(e.Category) == "" {
		fieldErrs["category"] = "this field is required"
	} else if len(e.Category) > MaxCategoryLength {
		fieldErrs["category"] = "must be at most 50 characters"
	}
	if err := ValidateAmount(e.Amount); err != nil {
		fieldErrs["amount"] = err.Error()
	}
	if e.Date.IsZero() {
		fieldErrs["date"] = "this field is required"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

// ValidateAmount enforces the NUMERIC(10, 2) precision: at most 2 fractional
// digits and at most 10 significant digits in total.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Exponent() < -amountMaxDecimals && !amount.Equal(amount.Truncate(amountMaxDecimals)) {
		return fmt.Errorf("no more than %d decimal places allowed", amountMaxDecimals)
	}
	if amount.Abs().GreaterThanOrEqual(amountLimit) {
		return fmt.Errorf("no more than %d digits allowed in total", amountMaxDigits)
	}
	return nil
}

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time component. It marshals to and
// from "YYYY-MM-DD" in JSON and maps to a DATE column.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month, and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

// MarshalJSON renders the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON parses a "YYYY-MM-DD" JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer for DATE columns.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v.UTC()
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
