package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/application"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/seat"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/show"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/theatre"
)

type ShowHandler struct {
	service ShowServiceInterface
}

func NewShowHandler(s ShowServiceInterface) *ShowHandler {
	return &ShowHandler{service: s}
}

type RegisterShowRequest struct {
	ID              string `json:"show_id" example:"SH1"`
	StartAt         string `json:"start_at" validate:"required" example:"2025-09-01T18:00:00+09:00"`
	EndAt           string `json:"end_at" validate:"required" example:"2025-09-01T21:00:00+09:00"`
	MovieID         string `json:"movie_id" example:"M1"`
	TheatreLocation string `json:"theatre_location" example:"New York"`
	HallID          string `json:"hall_id" example:"H1"`
}

type ShowResponse struct {
	ID        string `json:"show_id" example:"SH1"`
	StartAt   string `json:"start_at" example:"2025-09-01T18:00:00+09:00"`
	EndAt     string `json:"end_at" example:"2025-09-01T21:00:00+09:00"`
	HallID    string `json:"hall_id" example:"H1"`
	MovieID   string `json:"movie_id" example:"M1"`
	TheatreID string `json:"theatre_id" example:"T1"`
}

func toShowResponse(sh *show.Show) ShowResponse {
	return ShowResponse{
		ID:        sh.ID,
		StartAt:   sh.StartAt.Format(time.RFC3339),
		EndAt:     sh.EndAt.Format(time.RFC3339),
		HallID:    sh.HallID,
		MovieID:   sh.MovieID,
		TheatreID: sh.TheatreID,
	}
}

// Register godoc
// @Summary 上映を登録
// @Description 上映を登録し、指定があればホールにも紐付けます
// @Tags shows
// @Accept json
// @Produce json
// @Param request body RegisterShowRequest true "上映情報"
// @Success 201 {object} ShowResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shows [post]
func (h *ShowHandler) Register(c echo.Context) error {
	var req RegisterShowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "開始時刻の形式が不正です")
	}
	endAt, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "終了時刻の形式が不正です")
	}

	sh, err := h.service.RegisterShow(c.Request().Context(), application.RegisterShowInput{
		ID:              req.ID,
		StartAt:         startAt,
		EndAt:           endAt,
		MovieID:         req.MovieID,
		TheatreLocation: req.TheatreLocation,
		HallID:          req.HallID,
	})
	if err != nil {
		if errors.Is(err, theatre.ErrTheatreNotFound) || errors.Is(err, theatre.ErrHallNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, toShowResponse(sh))
}

// List godoc
// @Summary 上映一覧を取得
// @Tags shows
// @Produce json
// @Success 200 {array} ShowResponse
// @Router /shows [get]
func (h *ShowHandler) List(c echo.Context) error {
	shows, err := h.service.ListShows(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resp := make([]ShowResponse, len(shows))
	for i, sh := range shows {
		resp[i] = toShowResponse(sh)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary 上映を取得
// @Tags shows
// @Produce json
// @Param id path string true "上映ID"
// @Success 200 {object} ShowResponse
// @Failure 404 {object} map[string]string
// @Router /shows/{id} [get]
func (h *ShowHandler) GetByID(c echo.Context) error {
	sh, err := h.service.GetShow(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, show.ErrShowNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toShowResponse(sh))
}

type AddSeatRequest struct {
	SeatID string `json:"seat_id" example:"A12"`
	Type   string `json:"seat_type" validate:"required,oneof=economy premium" example:"economy"`
	Status string `json:"status" validate:"omitempty,oneof=available occupied" example:"available"`

	// Prefix と Count を指定すると連番の座席列を一括追加する
	Prefix string `json:"prefix" example:"A"`
	Count  int    `json:"count" validate:"omitempty,gt=0" example:"10"`
}

type SeatResponse struct {
	ID     string `json:"seat_id" example:"A12"`
	Type   string `json:"seat_type" example:"economy"`
	Status string `json:"status" example:"available"`
}

func toSeatResponse(d seat.Details) SeatResponse {
	return SeatResponse{ID: d.ID, Type: string(d.Type), Status: string(d.Status)}
}

// AddSeats godoc
// @Summary 上映に座席を追加
// @Description 単一座席または連番の座席列を追加します
// @Tags shows
// @Accept json
// @Produce json
// @Param id path string true "上映ID"
// @Param request body AddSeatRequest true "座席情報"
// @Success 201 {array} SeatResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shows/{id}/seats [post]
func (h *ShowHandler) AddSeats(c echo.Context) error {
	showID := c.Param("id")

	var req AddSeatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	if req.Count > 0 {
		seats, err := h.service.AddSeatRow(ctx, application.AddSeatRowInput{
			ShowID: showID,
			Prefix: req.Prefix,
			Count:  req.Count,
			Type:   seat.Type(req.Type),
		})
		if err != nil {
			return seatAddError(err)
		}
		resp := make([]SeatResponse, len(seats))
		for i, se := range seats {
			resp[i] = toSeatResponse(se.Details())
		}
		return c.JSON(http.StatusCreated, resp)
	}

	se, err := h.service.AddSeat(ctx, application.AddSeatInput{
		ShowID: showID,
		SeatID: req.SeatID,
		Type:   seat.Type(req.Type),
		Status: seat.Status(req.Status),
	})
	if err != nil {
		return seatAddError(err)
	}
	return c.JSON(http.StatusCreated, []SeatResponse{toSeatResponse(se.Details())})
}

func seatAddError(err error) error {
	switch {
	case errors.Is(err, show.ErrShowNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, show.ErrSeatAlreadyAdded):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}

// GetSeats godoc
// @Summary 上映の座席一覧を取得
// @Description available=true で空席のみを追加順で返します
// @Tags shows
// @Produce json
// @Param id path string true "上映ID"
// @Param available query bool false "空席のみ"
// @Success 200 {array} SeatResponse
// @Failure 404 {object} map[string]string
// @Router /shows/{id}/seats [get]
func (h *ShowHandler) GetSeats(c echo.Context) error {
	showID := c.Param("id")
	ctx := c.Request().Context()

	var (
		details []seat.Details
		err     error
	)
	if c.QueryParam("available") == "true" {
		details, err = h.service.GetAvailableSeats(ctx, showID)
	} else {
		details, err = h.service.GetSeats(ctx, showID)
	}
	if err != nil {
		if errors.Is(err, show.ErrShowNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]SeatResponse, len(details))
	for i, d := range details {
		resp[i] = toSeatResponse(d)
	}
	return c.JSON(http.StatusOK, resp)
}
