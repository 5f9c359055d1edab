package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/application"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/movie"
)

type MovieHandler struct {
	service MovieServiceInterface
}

func NewMovieHandler(s MovieServiceInterface) *MovieHandler {
	return &MovieHandler{service: s}
}

type RegisterMovieRequest struct {
	ID          string `json:"movie_id" example:"M1"`
	Title       string `json:"title" validate:"required" example:"Inception"`
	Genre       string `json:"genre" example:"Sci-Fi"`
	DurationMin int    `json:"duration_min" validate:"required,gt=0" example:"148"`
	Language    string `json:"language" example:"English"`
	ReleaseDate string `json:"release_date" example:"2025-08-01T00:00:00Z"`
}

type MovieResponse struct {
	ID          string `json:"movie_id" example:"M1"`
	Title       string `json:"title" example:"Inception"`
	Genre       string `json:"genre" example:"Sci-Fi"`
	DurationMin int    `json:"duration_min" example:"148"`
	Language    string `json:"language" example:"English"`
	ReleaseDate string `json:"release_date" example:"2025-08-01T00:00:00Z"`
}

func toMovieResponse(m *movie.Movie) MovieResponse {
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		DurationMin: m.DurationMin,
		Language:    m.Language,
		ReleaseDate: m.ReleaseDate.Format(time.RFC3339),
	}
}

// Register godoc
// @Summary 映画を登録
// @Description 映画を登録し、全顧客へ新作を通知します
// @Tags movies
// @Accept json
// @Produce json
// @Param request body RegisterMovieRequest true "映画情報"
// @Success 201 {object} MovieResponse
// @Failure 400 {object} map[string]string
// @Router /movies [post]
func (h *MovieHandler) Register(c echo.Context) error {
	var req RegisterMovieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var releaseDate time.Time
	if req.ReleaseDate != "" {
		var err error
		releaseDate, err = time.Parse(time.RFC3339, req.ReleaseDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "公開日の形式が不正です")
		}
	}

	m, err := h.service.RegisterMovie(c.Request().Context(), application.RegisterMovieInput{
		ID:          req.ID,
		Title:       req.Title,
		Genre:       req.Genre,
		DurationMin: req.DurationMin,
		Language:    req.Language,
		ReleaseDate: releaseDate,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, toMovieResponse(m))
}

// List godoc
// @Summary 映画一覧を取得
// @Tags movies
// @Produce json
// @Success 200 {array} MovieResponse
// @Router /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.service.ListMovies(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resp := make([]MovieResponse, len(movies))
	for i, m := range movies {
		resp[i] = toMovieResponse(m)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary 映画を取得
// @Tags movies
// @Produce json
// @Param id path string true "映画ID"
// @Success 200 {object} MovieResponse
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [get]
func (h *MovieHandler) GetByID(c echo.Context) error {
	m, err := h.service.GetMovie(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, movie.ErrMovieNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, toMovieResponse(m))
}
