package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for purchase and download handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// checkoutRequest is the wire shape of a checkout submission. The paying
// user comes from the access token, never from the body.
type checkoutRequest struct {
	Items  []usecase.CheckoutItemInput `json:"items" validate:"required,min=1,dive"`
	Amount float64                     `json:"amount" validate:"required,gt=0"`
	Card   service.CardDetails         `json:"card"`
}

// checkoutResponse returns the identifiers of a completed checkout.
type checkoutResponse struct {
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
}

// Checkout handles the purchase request.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		UserID: userID,
		Items:  req.Items,
		Amount: req.Amount,
		Card:   req.Card,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, checkoutResponse{
		OrderID:       output.OrderID.String(),
		TransactionID: output.TransactionID,
	}, "Checkout completed")
}

// ListOrders returns the caller's order history, newest first.
func (h *CheckoutHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// ListMyCourses returns the caller's course entitlements.
func (h *CheckoutHandler) ListMyCourses(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	grants, err := h.uc.ListCourseGrants(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, grants, "")
}

// DownloadCourse streams the course artifact as an attachment for an
// entitled caller.
func (h *CheckoutHandler) DownloadCourse(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
	}

	courseID := c.Param("courseId")

	output, err := h.uc.DownloadCourse(c.Request().Context(), userID, courseID)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if err := output.Content.Close(); err != nil {
			h.logger.Warn("Failed to close course content stream", slog.Any("error", err))
		}
	}()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", output.Filename))

	return c.Stream(http.StatusOK, "application/zip", output.Content)
}
