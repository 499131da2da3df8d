package handler

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"storefront/internal/delivery/http/middleware"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const checkoutBody = `{
	"items": [
		{"id": "course-ai", "type": "course", "name": "AI Fundamentals", "quantity": 1, "price": 49.99}
	],
	"amount": 49.99,
	"card": {"number": "4242424242424242", "name": "Test User", "exp_month": "12", "exp_year": "30", "cvv": "123"}
}`

func TestCheckoutHandler_Checkout_Success(t *testing.T) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, discardLogger())

	userID := uuid.New()
	orderID := uuid.New()

	uc.EXPECT().
		Checkout(mock.Anything, mock.AnythingOfType("*usecase.CheckoutInput")).
		Run(func(ctx context.Context, input *usecase.CheckoutInput) {
			assert.Equal(t, userID, input.UserID)
			assert.Len(t, input.Items, 1)
		}).
		Return(&usecase.CheckoutOutput{OrderID: orderID, TransactionID: "txn_abc123"}, nil)

	c, rec := newHandlerContext(t, http.MethodPost, "/api/checkout", checkoutBody)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.Checkout(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), orderID.String())
	assert.Contains(t, rec.Body.String(), "txn_abc123")
}

func TestCheckoutHandler_Checkout_NoUser(t *testing.T) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, discardLogger())

	c, rec := newHandlerContext(t, http.MethodPost, "/api/checkout", checkoutBody)

	require.NoError(t, h.Checkout(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckoutHandler_Checkout_EmptyItems(t *testing.T) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, discardLogger())

	c, _ := newHandlerContext(t, http.MethodPost, "/api/checkout",
		`{"items": [], "amount": 10, "card": {}}`)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := h.Checkout(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCheckoutHandler_DownloadCourse_StreamsAttachment(t *testing.T) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, discardLogger())

	userID := uuid.New()
	uc.EXPECT().
		DownloadCourse(mock.Anything, userID, "course-ai").
		Return(&usecase.DownloadOutput{
			Content:  io.NopCloser(strings.NewReader("zip-bytes")),
			Filename: "course-ai.zip",
		}, nil)

	c, rec := newHandlerContext(t, http.MethodGet, "/api/download/course-ai", "")
	c.SetParamNames("courseId")
	c.SetParamValues("course-ai")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.DownloadCourse(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "zip-bytes", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), `"course-ai.zip"`)
	assert.Equal(t, "application/zip", rec.Header().Get(echo.HeaderContentType))
}

func TestCheckoutHandler_ListOrders(t *testing.T) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, discardLogger())

	userID := uuid.New()
	uc.EXPECT().ListOrders(mock.Anything, userID).Return(nil, nil)

	c, rec := newHandlerContext(t, http.MethodGet, "/api/orders", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.ListOrders(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
