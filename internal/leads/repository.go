package leads

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for captured-lead storage
type Repository interface {
	Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error)
	GetByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context, limit, offset int) ([]*Lead, error)
}

// InMemoryRepository keeps captured leads in memory, newest first. It is the
// default backend when no database is configured.
type InMemoryRepository struct {
	mu    sync.RWMutex
	leads []*Lead
	byID  map[string]*Lead
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID: make(map[string]*Lead),
	}
}

// Create records a new lead
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lead := &Lead{
		ID:        uuid.New().String(),
		SessionID: req.SessionID,
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Source:    req.Source,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.leads = append([]*Lead{lead}, r.leads...)
	r.byID[lead.ID] = lead
	r.mu.Unlock()

	return lead, nil
}

// GetByID retrieves a lead by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.byID[id]
	if !ok {
		return nil, ErrLeadNotFound
	}
	return lead, nil
}

// List returns captured leads newest first.
func (r *InMemoryRepository) List(ctx context.Context, limit, offset int) ([]*Lead, error) {
	if limit <= 0 {
		limit = 50
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.leads) {
		return []*Lead{}, nil
	}
	end := offset + limit
	if end > len(r.leads) {
		end = len(r.leads)
	}
	page := make([]*Lead, end-offset)
	copy(page, r.leads[offset:end])
	return page, nil
}
