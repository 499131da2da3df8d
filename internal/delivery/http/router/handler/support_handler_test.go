package handler

import (
	"net/http"
	"testing"

	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSupportHandler_Chat(t *testing.T) {
	uc := mockUC.NewMockSupportUsecase(t)
	h := NewSupportHandler(uc)

	uc.EXPECT().
		Chat(mock.Anything, &usecase.ChatInput{Question: "Do you sell courses?"}).
		Return(&usecase.ChatOutput{Response: "Yes, see /api/courses."})

	c, rec := newHandlerContext(t, http.MethodPost, "/api/chat",
		`{"question":"Do you sell courses?"}`)

	require.NoError(t, h.Chat(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Yes, see /api/courses.")
}

func TestSupportHandler_Chat_MissingQuestion(t *testing.T) {
	uc := mockUC.NewMockSupportUsecase(t)
	h := NewSupportHandler(uc)

	c, _ := newHandlerContext(t, http.MethodPost, "/api/chat", `{}`)

	err := h.Chat(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
