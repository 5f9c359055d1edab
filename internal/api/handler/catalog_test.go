package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/application"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/domain/show"
)

// MockCatalogService はCatalogServiceInterfaceのモック
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Search(ctx context.Context, criteria application.SearchCriteria, value string) ([]*show.Show, error) {
	args := m.Called(ctx, criteria, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*show.Show), args.Error(1)
}

func TestCatalogHandler_Search(t *testing.T) {
	e := NewTestEcho()

	t.Run("条件種別と値で検索できる", func(t *testing.T) {
		mockService := new(MockCatalogService)
		mockService.On("Search", mock.Anything, application.CriteriaTitle, "Inception").
			Return([]*show.Show{testShow()}, nil)
		handler := NewCatalogHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/shows/search?criteria=title&value=Inception", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Search(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []ShowResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "SH1", resp[0].ID)
		mockService.AssertExpectations(t)
	})

	t.Run("criteriaが無いと400を返す", func(t *testing.T) {
		handler := NewCatalogHandler(new(MockCatalogService))

		req := httptest.NewRequest(http.MethodGet, "/shows/search?value=Inception", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Search(c)

		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("valueが無いと400を返す", func(t *testing.T) {
		handler := NewCatalogHandler(new(MockCatalogService))

		req := httptest.NewRequest(http.MethodGet, "/shows/search?criteria=title", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Search(c)

		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("未知の条件種別は空の結果を返す", func(t *testing.T) {
		mockService := new(MockCatalogService)
		mockService.On("Search", mock.Anything, application.SearchCriteria("director"), "Nolan").
			Return([]*show.Show{}, nil)
		handler := NewCatalogHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/shows/search?criteria=director&value=Nolan", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Search(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}
