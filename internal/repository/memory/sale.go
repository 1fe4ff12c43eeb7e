package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bellezapura/salon-api/internal/model"
)

// SaleRepository is an append-only log; sales are never updated or deleted.
type SaleRepository struct {
	store *Store
}

func NewSaleRepository(store *Store) *SaleRepository {
	return &SaleRepository{store: store}
}

func (r *SaleRepository) Create(ctx context.Context, sale *model.Sale) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	now := time.Now()
	sale.CreatedAt = now
	sale.UpdatedAt = now

	cp := *sale
	r.store.sales = append(r.store.sales, &cp)
	return nil
}

func (r *SaleRepository) List(ctx context.Context) ([]*model.Sale, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sales := make([]*model.Sale, 0, len(r.store.sales))
	for _, s := range r.store.sales {
		cp := *s
		sales = append(sales, &cp)
	}
	return sales, nil
}
