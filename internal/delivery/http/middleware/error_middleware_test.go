package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleTestError(t *testing.T, err error) (*httptest.ResponseRecorder, domainerrors.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	var body domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body := handleTestError(t, errors.Wrap(domainerrors.ErrCourseAccessDenied, "course download denied"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "COURSE_ACCESS_DENIED", body.Error.Code)
}

func TestErrorMiddleware_PaymentDeclined(t *testing.T) {
	rec, body := handleTestError(t, domainerrors.NewPaymentDeclinedError("Card expired"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Card expired", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "PAYMENT_DECLINED", body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handleTestError(t, echo.NewHTTPError(http.StatusBadRequest, "bad input"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad input", body.Message)
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	rec, body := handleTestError(t, errors.New("something broke"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
}
