package sales

import "github.com/polkiloo/salesdesk/internal/domain/model"

// Partition holds orders split by lifecycle state. Input order is preserved
// inside each group.
type Partition struct {
	New       []model.Order
	Completed []model.Order
	Archived  []model.Order
}

// Split assigns every order to exactly one lifecycle group.
func Split(orders []model.Order) Partition {
	var p Partition
	for _, o := range orders {
		switch o.State() {
		case model.OrderStateNew:
			p.New = append(p.New, o)
		case model.OrderStateCompleted:
			p.Completed = append(p.Completed, o)
		case model.OrderStateArchived:
			p.Archived = append(p.Archived, o)
		}
	}
	return p
}

// IDs returns order identifiers in input order.
func IDs(orders []model.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}
