package leads

import (
	"context"
	"sort"
	"sync"
)

// Repository persists leads for the admin listing.
type Repository interface {
	Insert(ctx context.Context, lead Lead) error
	List(ctx context.Context, tenant string, limit int) ([]Lead, error)
}

// MemoryRepository keeps leads in process memory. It is the default backend
// when no DATABASE_URL is configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	leads []Lead
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Insert(_ context.Context, lead Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads = append(r.leads, lead)
	return nil
}

// List returns the tenant's leads, newest first.
func (r *MemoryRepository) List(_ context.Context, tenant string, limit int) ([]Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Lead
	for _, l := range r.leads {
		if tenant == "" || l.Tenant == tenant {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
