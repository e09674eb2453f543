package test

import (
	"context"
	"sync"

	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// PollResult is a scripted response of OrderSourceStub.
type PollResult struct {
	Orders []model.Order
	Err    error
}

// OrderSourceStub replays scripted poll results. The last result repeats once
// the script is exhausted.
type OrderSourceStub struct {
	sync.Mutex
	Results  []PollResult
	LoginErr error
	Logins   int
	Polls    int
}

// RefreshOrders returns the next scripted result.
func (s *OrderSourceStub) RefreshOrders(ctx context.Context) ([]model.Order, error) {
	s.Lock()
	defer s.Unlock()
	s.Polls++
	if len(s.Results) == 0 {
		return nil, nil
	}
	res := s.Results[0]
	if len(s.Results) > 1 {
		s.Results = s.Results[1:]
	}
	return res.Orders, res.Err
}

// LoginStore counts session renewals.
func (s *OrderSourceStub) LoginStore(ctx context.Context) error {
	s.Lock()
	defer s.Unlock()
	s.Logins++
	return s.LoginErr
}

// PlayerStub records played alerts.
type PlayerStub struct {
	sync.Mutex
	Played []model.NewOrderAlert
	Err    error
	Closed bool
}

func (p *PlayerStub) Play(ctx context.Context, alert model.NewOrderAlert) error {
	p.Lock()
	defer p.Unlock()
	p.Played = append(p.Played, alert)
	return p.Err
}

func (p *PlayerStub) Close() error {
	p.Lock()
	defer p.Unlock()
	p.Closed = true
	return nil
}

// Alerts returns a copy of the played alerts.
func (p *PlayerStub) Alerts() []model.NewOrderAlert {
	p.Lock()
	defer p.Unlock()
	return append([]model.NewOrderAlert(nil), p.Played...)
}
