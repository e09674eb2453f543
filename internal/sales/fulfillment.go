package sales

import (
	"sort"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

type rankedOrder struct {
	order  model.Order
	multi  bool
	serial string
}

// SortNewOrders orders new orders for the picking list. Orders carrying more
// than one distinct serial number come first, newest first. Single-serial
// orders follow, grouped by serial ascending and newest first within a serial.
func SortNewOrders(orders []model.Order) []model.Order {
	ranked := make([]rankedOrder, 0, len(orders))
	for _, o := range orders {
		serials := distinctSerials(o)
		r := rankedOrder{order: o, multi: len(serials) > 1, serial: model.UnknownSerial}
		if len(serials) > 0 {
			r.serial = serials[0]
		}
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.multi != b.multi {
			return a.multi
		}
		if !a.multi && a.serial != b.serial {
			return a.serial < b.serial
		}
		return a.order.CreatedAt.After(b.order.CreatedAt)
	})

	result := make([]model.Order, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, r.order)
	}
	return result
}

func distinctSerials(o model.Order) []string {
	seen := make(map[string]struct{}, len(o.OrderItems))
	serials := make([]string, 0, len(o.OrderItems))
	for _, item := range o.OrderItems {
		s := item.Serial()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		serials = append(serials, s)
	}
	return serials
}
