package usecase

import (
	"context"
	"fmt"

	"github.com/polkiloo/salesdesk/internal/domain/model"
	"github.com/polkiloo/salesdesk/internal/sales"
	"github.com/polkiloo/salesdesk/internal/snapshot"
)

// Engagement lists the products customers most often keep in carts and wishlists.
type Engagement struct {
	Cart     []model.CartProductStat
	Wishlist []model.WishlistProductStat
}

// UserUseCase manages store customers.
type UserUseCase struct {
	store    UserStore
	snapshot *snapshot.Users
	audit    *AuditUseCase
}

func NewUserUseCase(store UserStore, snap *snapshot.Users, audit *AuditUseCase) *UserUseCase {
	return &UserUseCase{store: store, snapshot: snap, audit: audit}
}

// Users returns every customer, served from the snapshot when fresh.
func (u *UserUseCase) Users(ctx context.Context) ([]model.User, error) {
	if users, _, ok := u.snapshot.Get(); ok {
		return users, nil
	}
	gen := u.snapshot.Generation()
	users, err := u.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	u.snapshot.SetIfCurrent(users, gen)
	return users, nil
}

// Delete removes a customer account.
func (u *UserUseCase) Delete(ctx context.Context, adminID int64, id string) error {
	err := u.store.DeleteUser(ctx, id)
	u.snapshot.Invalidate()
	u.audit.Record(ctx, adminID, model.AuditActionDeleteUser, []string{id}, "", err)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// Engagement ranks cart and wishlist products across all customers.
func (u *UserUseCase) Engagement(ctx context.Context) (*Engagement, error) {
	users, err := u.Users(ctx)
	if err != nil {
		return nil, err
	}
	return &Engagement{
		Cart:     sales.TopCartProducts(users, sales.EngagementLimit),
		Wishlist: sales.TopWishlistProducts(users, sales.EngagementLimit),
	}, nil
}
