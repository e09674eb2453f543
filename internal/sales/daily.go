package sales

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// DailySalesWindow is how far back the dashboard revenue series reaches.
const DailySalesWindow = 30 * 24 * time.Hour

// PaidSales returns the total revenue of paid orders together with the daily
// revenue series over the trailing window, ascending by date.
func PaidSales(orders []model.Order, now time.Time, loc *time.Location) (decimal.Decimal, []model.DailySales) {
	total := decimal.Zero
	since := now.Add(-DailySalesWindow)
	buckets := make(map[time.Time]decimal.Decimal)

	for _, o := range orders {
		if !o.IsPaid {
			continue
		}
		total = total.Add(o.TotalPrice)
		if o.CreatedAt.Before(since) {
			continue
		}
		local := o.CreatedAt.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		buckets[day] = buckets[day].Add(o.TotalPrice)
	}

	series := make([]model.DailySales, 0, len(buckets))
	for day, amount := range buckets {
		series = append(series, model.DailySales{Date: day, Amount: amount})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return total, series
}
