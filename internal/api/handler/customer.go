package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/application"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/customer"
)

// defaultCash は初期現金残高（未指定時）
const defaultCash = 1000

type CustomerHandler struct {
	service CustomerServiceInterface
}

func NewCustomerHandler(s CustomerServiceInterface) *CustomerHandler {
	return &CustomerHandler{service: s}
}

type RegisterCustomerRequest struct {
	ID    string `json:"customer_id" example:"C1"`
	Name  string `json:"name" validate:"required" example:"John Doe"`
	Email string `json:"email" validate:"required,email" example:"john@example.com"`
	Cash  *int   `json:"cash" validate:"omitempty,gte=0" example:"1000"`
}

type CustomerResponse struct {
	ID           string `json:"customer_id" example:"C1"`
	Name         string `json:"name" example:"John Doe"`
	Email        string `json:"email" example:"john@example.com"`
	Cash         int    `json:"cash" example:"1000"`
	TotalPayable int    `json:"total_payable" example:"0"`
}

func toCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Cash:         c.Cash,
		TotalPayable: c.TotalPayable,
	}
}

// Register godoc
// @Summary 顧客を登録
// @Tags customers
// @Accept json
// @Produce json
// @Param request body RegisterCustomerRequest true "顧客情報"
// @Success 201 {object} CustomerResponse
// @Failure 400 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) Register(c echo.Context) error {
	var req RegisterCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cash := defaultCash
	if req.Cash != nil {
		cash = *req.Cash
	}

	cust, err := h.service.RegisterCustomer(c.Request().Context(), application.RegisterCustomerInput{
		ID: req.ID, Name: req.Name, Email: req.Email, Cash: cash,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, toCustomerResponse(cust))
}

// GetByID godoc
// @Summary 顧客を取得
// @Tags customers
// @Produce json
// @Param id path string true "顧客ID"
// @Success 200 {object} CustomerResponse
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetByID(c echo.Context) error {
	cust, err := h.service.GetCustomer(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toCustomerResponse(cust))
}

// GetBookings godoc
// @Summary 顧客の予約一覧を取得
// @Description 上映ID→座席IDリストの予約台帳スナップショットを返します
// @Tags customers
// @Produce json
// @Param id path string true "顧客ID"
// @Success 200 {object} map[string][]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id}/bookings [get]
func (h *CustomerHandler) GetBookings(c echo.Context) error {
	bookings, err := h.service.GetBookings(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, bookings)
}

// Remove godoc
// @Summary 顧客を削除
// @Tags customers
// @Param id path string true "顧客ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Remove(c echo.Context) error {
	if err := h.service.RemoveCustomer(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
