package receipt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/chokun100/coffeeshop/internal/service/models/cart"
	"github.com/chokun100/coffeeshop/internal/service/models/order"
	"github.com/chokun100/coffeeshop/internal/service/models/shopsettings"
	"github.com/chokun100/coffeeshop/internal/service/models/variant"
)

// Column widths for the two thermal paper formats.
const (
	width58mm = 32
	width80mm = 42
)

// taxRate is informational only: menu prices already include VAT, so the tax
// line always shows zero.
const taxRate = 7

// Render produces the plain-text receipt for an order. Settings arrive as an
// explicit value so rendering never reaches into shared state.
func Render(o order.Order, s shopsettings.Settings) string {
	width := width80mm
	if s.PrintFormat == shopsettings.PrintFormat58mm {
		width = width58mm
	}

	printer := message.NewPrinter(language.MustParse("th"))
	unit, err := currency.ParseISO(s.Currency)
	if err != nil {
		unit = currency.THB
	}
	symbol := strings.TrimSpace(fmt.Sprint(currency.Symbol(unit)))
	amount := func(cents int64) string {
		return symbol + printer.Sprint(number.Decimal(
			float64(cents)/100,
			number.MinFractionDigits(2),
			number.MaxFractionDigits(2),
		))
	}

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	rule := func() { line(strings.Repeat("-", width)) }
	split := func(left, right string) {
		pad := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
		if pad < 1 {
			pad = 1
		}
		line(left + strings.Repeat(" ", pad) + right)
	}

	line(center(strings.ToUpper(s.StoreName), width))
	if s.ShowStoreDetails {
		for _, detail := range []string{s.Address, s.Phone, s.Email} {
			if detail != "" {
				line(center(detail, width))
			}
		}
	}
	if s.PrintHeader != "" {
		line(center(s.PrintHeader, width))
	}

	rule()
	split("Order", fmt.Sprintf("#%d", o.ID))
	split("Type", strings.ReplaceAll(o.OrderType.String(), "_", " "))
	if s.ShowCustomerDetails && o.CustomerName != "" {
		split("Customer", o.CustomerName)
	}
	if s.PrintToken && o.QueueNumber != "" {
		line(center("Token: "+o.QueueNumber, width))
	}

	rule()
	for _, item := range o.Items {
		line(item.ItemName)
		split(
			fmt.Sprintf(" %dx %s", item.Quantity, amount(item.UnitPriceCents)),
			amount(item.TotalCents()),
		)
		if s.ShowNotes {
			if details := itemDetails(item.SugarLevel, item.Notes); details != "" {
				line(" " + details)
			}
		}
	}

	rule()
	split("Subtotal:", amount(o.TotalCents))
	split(fmt.Sprintf("Tax (%d%%):", taxRate), amount(0))
	split("Total:", amount(o.TotalCents))

	if s.PrintFooter != "" {
		rule()
		line(center(s.PrintFooter, width))
	}

	return b.String()
}

// itemDetails renders the customization line: sweetness, extra shots parsed
// out of the notes convention, and any residual free text.
func itemDetails(sugar variant.SugarLevel, notes string) string {
	shots, rest := cart.ParseExtraShots(notes)

	parts := make([]string, 0, 3)
	if sugar != "" {
		parts = append(parts, fmt.Sprintf("sweet %d%%", cart.PercentFromSugar(sugar)))
	}
	if shots > 0 {
		parts = append(parts, fmt.Sprintf("extra shot x%d", shots))
	}
	if rest != "" {
		parts = append(parts, rest)
	}

	return strings.Join(parts, " • ")
}

func center(s string, width int) string {
	runes := utf8.RuneCountInString(s)
	if runes >= width {
		return s
	}
	pad := (width - runes) / 2

	return strings.Repeat(" ", pad) + s
}
