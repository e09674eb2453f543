package sales

import (
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

var london = mustLocation("Europe/London")

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func at(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, london)
}

func item(serial, name string, qty int, price string) model.OrderItem {
	return model.OrderItem{SerialNumber: serial, Name: name, Quantity: qty, Price: dec(price)}
}

func archived(id string, created time.Time, total string, items ...model.OrderItem) model.Order {
	return model.Order{
		ID:             id,
		CreatedAt:      created,
		IsPaid:         true,
		IsDelivered:    true,
		IsMovedToSales: true,
		TotalPrice:     dec(total),
		OrderItems:     items,
	}
}
