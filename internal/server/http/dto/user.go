package dto

import (
	"time"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// UserResponse describes a store customer.
type UserResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Newsletter    bool      `json:"newsletter"`
	EmailOffers   bool      `json:"emailOffers"`
	PhoneOffers   bool      `json:"phoneOffers"`
	IsAdmin       bool      `json:"isAdmin"`
	TotalOrders   int       `json:"totalOrders"`
	CartItems     int       `json:"cartItems"`
	WishlistItems int       `json:"wishlistItems"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CartStatResponse struct {
	ProductID     string `json:"productId"`
	Name          string `json:"name"`
	TimesAdded    int    `json:"timesAdded"`
	TotalQuantity int    `json:"totalQuantity"`
}

type WishlistStatResponse struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	TimesAdded int    `json:"timesAdded"`
}

// EngagementResponse lists the most carted and wishlisted products.
type EngagementResponse struct {
	Cart     []CartStatResponse     `json:"cart"`
	Wishlist []WishlistStatResponse `json:"wishlist"`
}

func FromUser(u model.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		Phone:         u.Phone,
		Newsletter:    u.Newsletter,
		EmailOffers:   u.EmailOffers,
		PhoneOffers:   u.PhoneOffers,
		IsAdmin:       u.IsAdmin,
		TotalOrders:   u.TotalOrders,
		CartItems:     len(u.Cart),
		WishlistItems: len(u.Wishlist),
		CreatedAt:     u.CreatedAt,
	}
}

func FromUsers(users []model.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, FromUser(u))
	}
	return result
}

func FromEngagement(cart []model.CartProductStat, wishlist []model.WishlistProductStat) EngagementResponse {
	resp := EngagementResponse{
		Cart:     make([]CartStatResponse, 0, len(cart)),
		Wishlist: make([]WishlistStatResponse, 0, len(wishlist)),
	}
	for _, s := range cart {
		resp.Cart = append(resp.Cart, CartStatResponse{ProductID: s.ProductID, Name: s.Name, TimesAdded: s.TimesAdded, TotalQuantity: s.TotalQuantity})
	}
	for _, s := range wishlist {
		resp.Wishlist = append(resp.Wishlist, WishlistStatResponse{ProductID: s.ProductID, Name: s.Name, TimesAdded: s.TimesAdded})
	}
	return resp
}
