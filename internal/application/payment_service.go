package application

import (
	"context"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/booking"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/customer"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/pkg/metrics"
)

// PaymentService は支払処理を行う
// 支払対象の座席予約については関知しない（整合性は呼び出し側が担う）
type PaymentService struct {
	metrics *metrics.Metrics
}

// NewPaymentService は新しいPaymentServiceを作成する
func NewPaymentService(m *metrics.Metrics) *PaymentService {
	return &PaymentService{metrics: m}
}

// ProcessPayment は顧客に対して金額を請求する
//   - 現金: 残高が足りる場合のみ成功し、残高を減算して支払累計に加算する
//   - クレジットカード: 常に成功し、支払累計にのみ加算する（与信は無制限とみなす）
//   - それ以外の支払方法は失敗する
func (s *PaymentService) ProcessPayment(ctx context.Context, c *customer.Customer, amount int, method booking.Method) error {
	switch method {
	case booking.MethodCash:
		if err := c.Debit(amount); err != nil {
			s.record(method, "failed")
			return err
		}
		c.AddPayable(amount)
	case booking.MethodCreditCard:
		c.AddPayable(amount)
	default:
		s.record(method, "failed")
		return booking.ErrUnknownPaymentMethod
	}
	s.record(method, "success")
	return nil
}

func (s *PaymentService) record(method booking.Method, status string) {
	if s.metrics != nil {
		s.metrics.PaymentsTotal.WithLabelValues(string(method), status).Inc()
	}
}
