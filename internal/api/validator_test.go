package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	type input struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	v := NewValidator()

	t.Run("有効な構造体", func(t *testing.T) {
		err := v.Validate(&input{Name: "John", Email: "john@example.com"})
		assert.NoError(t, err)
	})

	t.Run("必須項目が空", func(t *testing.T) {
		err := v.Validate(&input{Email: "john@example.com"})

		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})

	t.Run("メールアドレスの形式が不正", func(t *testing.T) {
		err := v.Validate(&input{Name: "John", Email: "invalid"})

		require.Error(t, err)
	})
}

func TestCustomHTTPErrorHandler(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = CustomHTTPErrorHandler

	t.Run("HTTPErrorはそのコードとメッセージを返す", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "見つかりません"), c)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "見つかりません", resp.Error)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("未知のエラーは500を返す", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		CustomHTTPErrorHandler(assert.AnError, c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
