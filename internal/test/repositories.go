package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/salesdesk/internal/domain/errors"
	"github.com/polkiloo/salesdesk/internal/domain/model"
)

// AdminRepositoryStub stores operators in-memory for tests.
type AdminRepositoryStub struct {
	Admins map[string]*model.Admin
	ByID   map[int64]*model.Admin
	Next   int64
	Err    error
}

// NewAdminRepositoryStub constructs stub repository with initialized maps.
func NewAdminRepositoryStub() *AdminRepositoryStub {
	return &AdminRepositoryStub{
		Admins: make(map[string]*model.Admin),
		ByID:   make(map[int64]*model.Admin),
		Next:   1,
	}
}

// Create registers operator unless already exists or stub has explicit error.
func (s *AdminRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Admins == nil {
		s.Admins = make(map[string]*model.Admin)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Admin)
	}
	if _, exists := s.Admins[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	admin := &model.Admin{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Admins[login] = admin
	s.ByID[admin.ID] = admin
	return admin, nil
}

// GetByLogin fetches operator by login or returns not found.
func (s *AdminRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if admin, ok := s.Admins[login]; ok {
		return admin, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches operator by identifier or returns not found.
func (s *AdminRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if admin, ok := s.ByID[id]; ok {
		return admin, nil
	}
	return nil, domainErrors.ErrNotFound
}

// AuditRepositoryStub keeps appended entries in memory. Safe for concurrent use.
type AuditRepositoryStub struct {
	AppendErr error
	ListFn    func(context.Context, model.AuditFilter) ([]model.AuditEntry, error)

	mu      sync.Mutex
	entries []model.AuditEntry
}

// Append stores entry unless AppendErr is set.
func (s *AuditRepositoryStub) Append(ctx context.Context, entry model.AuditEntry) (*model.AuditEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.AppendErr != nil {
		return nil, s.AppendErr
	}
	entry.ID = int64(len(s.entries) + 1)
	entry.CreatedAt = time.Now()
	s.entries = append(s.entries, entry)
	return &entry, nil
}

// List returns entries newest first or delegates to ListFn.
func (s *AuditRepositoryStub) List(ctx context.Context, filter model.AuditFilter) ([]model.AuditEntry, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.AuditEntry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if filter.Action != "" && e.Action != filter.Action {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

// Entries returns appended entries in insertion order.
func (s *AuditRepositoryStub) Entries() []model.AuditEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.AuditEntry(nil), s.entries...)
}
