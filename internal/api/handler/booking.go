package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/application"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/booking"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/customer"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/seat"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/show"
)

type BookingHandler struct {
	service BookingServiceInterface
}

func NewBookingHandler(s BookingServiceInterface) *BookingHandler {
	return &BookingHandler{service: s}
}

type MakeBookingRequest struct {
	ShowID        string `json:"show_id" validate:"required" example:"SH1"`
	SeatID        string `json:"seat_id" validate:"required" example:"A12"`
	PaymentMethod string `json:"payment_method" validate:"required" example:"cash"`
}

type BookingResponse struct {
	CustomerID string `json:"customer_id" example:"C1"`
	ShowID     string `json:"show_id" example:"SH1"`
	SeatID     string `json:"seat_id" example:"A12"`
	SeatType   string `json:"seat_type" example:"economy"`
	Amount     int    `json:"amount" example:"100"`
}

// Create godoc
// @Summary 座席を予約
// @Description 空席を確保し、指定の支払方法で請求します
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Customer-ID header string true "顧客ID"
// @Param request body MakeBookingRequest true "予約情報"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} map[string]string "請求失敗（座席は確保されたまま）"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "座席が予約済み"
// @Router /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	customerID := c.Request().Header.Get("X-Customer-ID")
	if customerID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "顧客IDが必要です")
	}

	var req MakeBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	method, err := booking.ParseMethod(req.PaymentMethod)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.MakeBooking(c.Request().Context(), application.MakeBookingInput{
		CustomerID: customerID,
		ShowID:     req.ShowID,
		SeatID:     req.SeatID,
		Method:     method,
	})
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrCustomerNotFound),
			errors.Is(err, show.ErrShowNotFound),
			errors.Is(err, seat.ErrSeatNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, seat.ErrSeatNotAvailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, booking.ErrPaymentFailed):
			return echo.NewHTTPError(http.StatusPaymentRequired, err.Error())
		default:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, BookingResponse{
		CustomerID: result.CustomerID,
		ShowID:     result.ShowID,
		SeatID:     result.SeatID,
		SeatType:   string(result.SeatType),
		Amount:     result.Amount,
	})
}

type CancelBookingRequest struct {
	ShowID string `json:"show_id" validate:"required" example:"SH1"`
	SeatID string `json:"seat_id" validate:"required" example:"A12"`
}

// Cancel godoc
// @Summary 予約をキャンセル
// @Description 座席を解放し、予約台帳から取り除きます（返金なし）
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Customer-ID header string true "顧客ID"
// @Param request body CancelBookingRequest true "キャンセル情報"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string "予約が存在しない"
// @Failure 409 {object} map[string]string "座席が占有されていない"
// @Router /bookings/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	customerID := c.Request().Header.Get("X-Customer-ID")
	if customerID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "顧客IDが必要です")
	}

	var req CancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.service.CancelBooking(c.Request().Context(), application.CancelBookingInput{
		CustomerID: customerID,
		ShowID:     req.ShowID,
		SeatID:     req.SeatID,
	})
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrCustomerNotFound),
			errors.Is(err, show.ErrShowNotFound),
			errors.Is(err, seat.ErrSeatNotFound),
			errors.Is(err, customer.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, seat.ErrSeatNotOccupied):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "cancelled"})
}
