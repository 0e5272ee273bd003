package response

import (
	"fmt"
	"strings"
	"time"

	"moviehub/internal/data/entity"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
)

const NotAvailable = "N/A"

const (
	cardDateLayout = "Jan 2, 2006"
	longDateLayout = "January 2, 2006"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatRuntime renders minutes as "2h 28m".
func FormatRuntime(minutes *int) string {
	if minutes == nil || *minutes <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%dh %dm", *minutes/60, *minutes%60)
}

// FormatCurrency renders a whole-dollar amount as en-US USD without cents,
// e.g. "$160,000,000". currency.Amount always prints two fraction digits and
// a space after the symbol, so only the symbol comes from the currency table.
func FormatCurrency(amount *int64) string {
	if amount == nil || *amount == 0 {
		return NotAvailable
	}
	if *amount < 0 {
		return usd.Sprintf("-%v%d", currency.Symbol(currency.USD), -*amount)
	}
	return usd.Sprintf("%v%d", currency.Symbol(currency.USD), *amount)
}

func FormatRating(vote *float64) string {
	if vote == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f", *vote)
}

// FormatCardDate renders a catalog date ("2010-07-15") as "Jul 15, 2010".
func FormatCardDate(value *string) string {
	raw, ok := entity.Optional(value)
	if !ok {
		return NotAvailable
	}
	t, err := parseDate(raw)
	if err != nil {
		return NotAvailable
	}
	return t.Format(cardDateLayout)
}

// FormatLongDate renders a release timestamp as "July 16, 2010".
func FormatLongDate(raw string) string {
	if raw == "" {
		return NotAvailable
	}
	t, err := parseDate(raw)
	if err != nil {
		return NotAvailable
	}
	return t.Format(longDateLayout)
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// LanguageName returns the English name of an ISO 639-1 code, falling back
// to the upper-cased code.
func LanguageName(code string) string {
	if code == "" {
		return NotAvailable
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToUpper(code)
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return strings.ToUpper(code)
}

func LanguageCode(code *string) string {
	if c, ok := entity.Optional(code); ok {
		return strings.ToUpper(c)
	}
	return NotAvailable
}
