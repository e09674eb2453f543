package sales

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/salesdesk/internal/domain/errors"
	"github.com/polkiloo/salesdesk/internal/domain/model"
)

const (
	monthKeyLayout   = "2006-01"
	monthLabelLayout = "January 2006"
)

// MonthOf returns the calendar month of t in loc.
func MonthOf(t time.Time, loc *time.Location) model.Month {
	local := t.In(loc)
	return model.Month{Year: local.Year(), Month: local.Month()}
}

// MonthBounds returns the first and the last instant of m, both inclusive.
func MonthBounds(m model.Month, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return from, to
}

// MonthKey renders m as YYYY-MM.
func MonthKey(m model.Month) string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format(monthKeyLayout)
}

// MonthLabel renders m as e.g. "March 2025".
func MonthLabel(m model.Month) string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format(monthLabelLayout)
}

// ParseMonth accepts YYYY-MM or a "March 2025" style label.
func ParseMonth(raw string) (model.Month, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{monthKeyLayout, monthLabelLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return model.Month{Year: t.Year(), Month: t.Month()}, nil
		}
	}
	return model.Month{}, fmt.Errorf("parse month %q: %w", raw, domainErrors.ErrInvalidMonth)
}

// MonthOptions lists the distinct months in which any order was created,
// newest first.
func MonthOptions(orders []model.Order, loc *time.Location) []model.Month {
	seen := make(map[model.Month]struct{})
	months := make([]model.Month, 0)
	for _, o := range orders {
		m := MonthOf(o.CreatedAt, loc)
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year > months[j].Year
		}
		return months[i].Month > months[j].Month
	})
	return months
}

// DefaultMonth is the most recent month present in orders.
func DefaultMonth(orders []model.Order, loc *time.Location) (model.Month, bool) {
	options := MonthOptions(orders, loc)
	if len(options) == 0 {
		return model.Month{}, false
	}
	return options[0], true
}

// FilterByMonth keeps archived orders created within m.
func FilterByMonth(orders []model.Order, m model.Month, loc *time.Location) []model.Order {
	from, to := MonthBounds(m, loc)
	return archivedBetween(orders, from, to)
}

// Totals sums total prices of orders.
func Totals(orders []model.Order) model.SalesTotals {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalPrice)
	}
	return model.SalesTotals{TotalSales: total, TotalOrders: len(orders)}
}

func archivedBetween(orders []model.Order, from, to time.Time) []model.Order {
	result := make([]model.Order, 0)
	for _, o := range orders {
		if !o.IsMovedToSales {
			continue
		}
		if o.CreatedAt.Before(from) || o.CreatedAt.After(to) {
			continue
		}
		result = append(result, o)
	}
	return result
}
