package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SupportHandler serves the generated-text chat endpoint.
type SupportHandler struct {
	uc usecase.SupportUsecase
}

// NewSupportHandler is the constructor for SupportHandler, injected by Fx.
func NewSupportHandler(uc usecase.SupportUsecase) *SupportHandler {
	return &SupportHandler{uc: uc}
}

// Chat answers a free-form customer question. Backend failures never reach
// this handler; the usecase always produces text.
func (h *SupportHandler) Chat(c echo.Context) error {
	var input usecase.ChatInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output := h.uc.Chat(c.Request().Context(), &input)

	return response.Success(c, http.StatusOK, map[string]string{"response": output.Response}, "")
}
