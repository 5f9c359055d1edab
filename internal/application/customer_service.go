package application

import (
	"context"
	"fmt"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/customer"
)

// CustomerService は顧客の登録と照会を行う
type CustomerService struct {
	customerRepo customer.Repository
}

// NewCustomerService は新しいCustomerServiceを作成する
func NewCustomerService(cr customer.Repository) *CustomerService {
	return &CustomerService{customerRepo: cr}
}

// RegisterCustomerInput は顧客登録の入力
type RegisterCustomerInput struct {
	ID    string
	Name  string
	Email string
	Cash  int
}

// RegisterCustomer は顧客を登録する
func (s *CustomerService) RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*customer.Customer, error) {
	c := customer.NewCustomer(input.ID, input.Name, input.Email, input.Cash)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("バリデーションエラー: %w", err)
	}
	if err := s.customerRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("顧客登録に失敗: %w", err)
	}
	return c, nil
}

// GetCustomer はIDから顧客を取得する
func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*customer.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

// GetBookings は顧客の予約台帳のスナップショットを返す
func (s *CustomerService) GetBookings(ctx context.Context, id string) (map[string][]string, error) {
	c, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.Bookings(), nil
}

// RemoveCustomer は顧客を登録から外す
func (s *CustomerService) RemoveCustomer(ctx context.Context, id string) error {
	return s.customerRepo.Delete(ctx, id)
}
