package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/application"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/theatre"
)

type TheatreHandler struct {
	service TheatreServiceInterface
}

func NewTheatreHandler(s TheatreServiceInterface) *TheatreHandler {
	return &TheatreHandler{service: s}
}

type RegisterTheatreRequest struct {
	ID       string   `json:"theatre_id" example:"T1"`
	Location string   `json:"location" validate:"required" example:"New York"`
	HallIDs  []string `json:"hall_ids" example:"H1,H2"`
}

type TheatreResponse struct {
	ID       string   `json:"theatre_id" example:"T1"`
	Location string   `json:"location" example:"New York"`
	HallIDs  []string `json:"hall_ids" example:"H1,H2"`
}

func toTheatreResponse(t *theatre.Theatre) TheatreResponse {
	d := t.Details()
	return TheatreResponse{ID: d.ID, Location: d.Location, HallIDs: d.HallIDs}
}

// Register godoc
// @Summary 劇場を登録
// @Description 劇場を所在地キーで登録します（同一所在地は置き換え）
// @Tags theatres
// @Accept json
// @Produce json
// @Param request body RegisterTheatreRequest true "劇場情報"
// @Success 201 {object} TheatreResponse
// @Failure 400 {object} map[string]string
// @Router /theatres [post]
func (h *TheatreHandler) Register(c echo.Context) error {
	var req RegisterTheatreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	t, err := h.service.RegisterTheatre(c.Request().Context(), application.RegisterTheatreInput{
		ID: req.ID, Location: req.Location, HallIDs: req.HallIDs,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, toTheatreResponse(t))
}

// List godoc
// @Summary 劇場一覧を取得
// @Tags theatres
// @Produce json
// @Success 200 {array} TheatreResponse
// @Router /theatres [get]
func (h *TheatreHandler) List(c echo.Context) error {
	theatres, err := h.service.ListTheatres(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resp := make([]TheatreResponse, len(theatres))
	for i, t := range theatres {
		resp[i] = toTheatreResponse(t)
	}
	return c.JSON(http.StatusOK, resp)
}

// Remove godoc
// @Summary 劇場を削除
// @Description 所在地の劇場を登録から外します（上映のカスケード削除なし）
// @Tags theatres
// @Param location path string true "所在地"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /theatres/{location} [delete]
func (h *TheatreHandler) Remove(c echo.Context) error {
	location := c.Param("location")
	if err := h.service.RemoveTheatre(c.Request().Context(), location); err != nil {
		if errors.Is(err, theatre.ErrTheatreNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
