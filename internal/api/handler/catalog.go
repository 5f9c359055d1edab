package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/application"
)

type CatalogHandler struct {
	service CatalogServiceInterface
}

func NewCatalogHandler(s CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// Search godoc
// @Summary 上映を検索
// @Description 条件種別（title / location / genre / language）と値で上映を検索します
// @Description 大文字小文字を区別しない完全一致で、結果は登録順を保ちます
// @Tags catalog
// @Produce json
// @Param criteria query string true "条件種別" Enums(title, location, genre, language)
// @Param value query string true "検索値"
// @Success 200 {array} ShowResponse
// @Failure 400 {object} map[string]string
// @Router /shows/search [get]
func (h *CatalogHandler) Search(c echo.Context) error {
	criteria := c.QueryParam("criteria")
	value := c.QueryParam("value")
	if criteria == "" || value == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "criteria と value は必須です")
	}

	shows, err := h.service.Search(c.Request().Context(), application.SearchCriteria(criteria), value)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]ShowResponse, len(shows))
	for i, sh := range shows {
		resp[i] = toShowResponse(sh)
	}
	return c.JSON(http.StatusOK, resp)
}
