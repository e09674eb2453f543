package sales

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// BestSellerLimit caps the best-seller ranking.
const BestSellerLimit = 10

type itemKey struct {
	serial string
	name   string
}

// BestSellers ranks line items of orders by total quantity sold. Items are
// grouped by serial number and name; ties keep first-encounter order.
func BestSellers(orders []model.Order, limit int) []model.BestSeller {
	index := make(map[itemKey]int)
	ranking := make([]model.BestSeller, 0)
	for _, o := range orders {
		for _, item := range o.OrderItems {
			key := itemKey{serial: item.Serial(), name: item.Name}
			pos, ok := index[key]
			if !ok {
				pos = len(ranking)
				index[key] = pos
				ranking = append(ranking, model.BestSeller{SerialNumber: key.serial, Name: key.name, Revenue: decimal.Zero})
			}
			ranking[pos].Quantity += item.Quantity
			ranking[pos].Revenue = ranking[pos].Revenue.Add(item.LineTotal())
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}
