package sales

import (
	"sort"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// EngagementLimit caps cart and wishlist rankings.
const EngagementLimit = 30

type productKey struct {
	id   string
	name string
}

// TopCartProducts ranks products by how many carts hold them, then by the
// total quantity across carts.
func TopCartProducts(users []model.User, limit int) []model.CartProductStat {
	index := make(map[productKey]int)
	stats := make([]model.CartProductStat, 0)
	for _, u := range users {
		for _, item := range u.Cart {
			key := productKey{id: item.ProductID, name: item.Name}
			pos, ok := index[key]
			if !ok {
				pos = len(stats)
				index[key] = pos
				stats = append(stats, model.CartProductStat{ProductID: key.id, Name: key.name})
			}
			stats[pos].TimesAdded++
			stats[pos].TotalQuantity += item.Quantity
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].TimesAdded != stats[j].TimesAdded {
			return stats[i].TimesAdded > stats[j].TimesAdded
		}
		return stats[i].TotalQuantity > stats[j].TotalQuantity
	})
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// TopWishlistProducts ranks products by how many wishlists hold them.
func TopWishlistProducts(users []model.User, limit int) []model.WishlistProductStat {
	index := make(map[productKey]int)
	stats := make([]model.WishlistProductStat, 0)
	for _, u := range users {
		for _, item := range u.Wishlist {
			key := productKey{id: item.ProductID, name: item.Name}
			pos, ok := index[key]
			if !ok {
				pos = len(stats)
				index[key] = pos
				stats = append(stats, model.WishlistProductStat{ProductID: key.id, Name: key.name})
			}
			stats[pos].TimesAdded++
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TimesAdded > stats[j].TimesAdded
	})
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}
