package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// StripeFeeRate is the card processing fee applied to weekly gross revenue.
var StripeFeeRate = decimal.RequireFromString("0.025")

// WeekBounds returns the Sunday-to-Saturday week containing now.
func WeekBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	offset := int(local.Weekday())
	from := time.Date(local.Year(), local.Month(), local.Day()-offset, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return from, to
}

// WeeklyInvoice rolls up archived orders of the current week, including card
// processing fees.
func WeeklyInvoice(orders []model.Order, now time.Time, loc *time.Location) model.Invoice {
	from, to := WeekBounds(now, loc)
	invoice := rollup(archivedBetween(orders, from, to), from, to)
	fees := invoice.TotalGrossPrice.Mul(StripeFeeRate)
	invoice.TotalStripeFees = &fees
	return invoice
}

// MonthlyInvoice rolls up archived orders of the calendar month containing now.
func MonthlyInvoice(orders []model.Order, now time.Time, loc *time.Location) model.Invoice {
	from, to := MonthBounds(MonthOf(now, loc), loc)
	return rollup(archivedBetween(orders, from, to), from, to)
}

func rollup(orders []model.Order, from, to time.Time) model.Invoice {
	invoice := model.Invoice{
		From:            from,
		To:              to,
		Lines:           make([]model.InvoiceLine, 0),
		TotalNetPrice:   decimal.Zero,
		TotalGrossPrice: decimal.Zero,
		OrderCount:      len(orders),
	}

	index := make(map[itemKey]int)
	for _, o := range orders {
		invoice.TotalGrossPrice = invoice.TotalGrossPrice.Add(o.TotalPrice)
		for _, item := range o.OrderItems {
			key := itemKey{serial: item.Serial(), name: item.Name}
			pos, ok := index[key]
			if !ok {
				pos = len(invoice.Lines)
				index[key] = pos
				invoice.Lines = append(invoice.Lines, model.InvoiceLine{SerialNumber: key.serial, Name: key.name, NetPrice: decimal.Zero})
			}
			line := item.LineTotal()
			invoice.Lines[pos].Quantity += item.Quantity
			invoice.Lines[pos].NetPrice = invoice.Lines[pos].NetPrice.Add(line)
			invoice.TotalNetPrice = invoice.TotalNetPrice.Add(line)
		}
	}
	return invoice
}
