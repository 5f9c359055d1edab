package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/customer"
)

// CustomerRepository はレジストリ上の顧客リポジトリ実装
type CustomerRepository struct {
	store *Store
}

// NewCustomerRepository は新しいCustomerRepositoryを作成する
func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

// Create は顧客を登録する
// IDが空の場合は採番する
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	for _, existing := range r.store.customers {
		if existing.ID == c.ID {
			return customer.ErrCustomerAlreadyExists
		}
	}
	r.store.customers = append(r.store.customers, c)
	return nil
}

// GetByID はIDから顧客を取得する
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, customer.ErrCustomerNotFound
}

// List は顧客一覧を登録順で返す
func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	customers := make([]*customer.Customer, len(r.store.customers))
	copy(customers, r.store.customers)
	return customers, nil
}

// Delete は顧客を登録から外す
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, c := range r.store.customers {
		if c.ID == id {
			r.store.customers = append(r.store.customers[:i], r.store.customers[i+1:]...)
			return nil
		}
	}
	return customer.ErrCustomerNotFound
}
