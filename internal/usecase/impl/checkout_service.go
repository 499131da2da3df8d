package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager       repository.TransactionManager
	userRepo        repository.UserRepository
	orderRepo       repository.OrderRepository
	entitlementRepo repository.EntitlementRepository
	gateway         service.PaymentGateway
	contentStore    service.ContentStore
	currency        string
	logger          *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	UserRepo        repository.UserRepository
	OrderRepo       repository.OrderRepository
	EntitlementRepo repository.EntitlementRepository
	Gateway         service.PaymentGateway
	ContentStore    service.ContentStore
	Config          *config.Config
	Logger          *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	currency := "usd"
	if params.Config != nil && params.Config.Payment != nil && params.Config.Payment.Currency != "" {
		currency = params.Config.Payment.Currency
	}

	return &checkoutService{
		txManager:       params.TxManager,
		userRepo:        params.UserRepo,
		orderRepo:       params.OrderRepo,
		entitlementRepo: params.EntitlementRepo,
		gateway:         params.Gateway,
		contentStore:    params.ContentStore,
		currency:        currency,
		logger:          params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout runs the complete purchase flow: one authorize attempt, then the
// order row and every course grant inside a single transaction. A declined
// payment writes nothing; a failed transaction leaves no partial grants.
func (srv *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	srv.log(ctx).Info("Starting checkout",
		slog.Any("userID", input.UserID),
		slog.Int("items", len(input.Items)),
		slog.Float64("amount", input.Amount),
	)

	// The paying customer is the logged-in account, not whatever name is
	// embossed on the card.
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Checkout for unknown user", slog.Any("userID", input.UserID))

			return nil, errors.Wrap(domainerrors.ErrOrderUserMissing, "checkout failed")
		}

		return nil, errors.Wrap(err, "failed to load user for checkout")
	}

	customer := service.CustomerInfo{Name: user.Name, Email: user.Email}
	result, err := srv.gateway.Authorize(ctx, input.Amount, srv.currency, input.Card, customer)
	if err != nil {
		srv.log(ctx).Error("Payment authorization errored", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to authorize payment")
	}
	if !result.Approved {
		srv.log(ctx).Info("Checkout declined", slog.String("reason", result.Reason))

		return nil, domainerrors.NewPaymentDeclinedError(result.Reason)
	}

	order := &entity.Order{
		UserID:        input.UserID,
		Items:         toOrderItems(input.Items),
		Amount:        input.Amount,
		Status:        entity.OrderStatusCompleted,
		TransactionID: result.TransactionID,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		entitlements := repoFactory.EntitlementRepo()
		for _, item := range order.Items {
			if item.Type != entity.ItemTypeCourse {
				continue
			}
			if err := entitlements.Grant(ctx, input.UserID, item.ID); err != nil {
				return errors.Wrapf(err, "failed to grant access to course %s", item.ID)
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute checkout transaction", slog.Any("userID", input.UserID), slog.Any("error", err))

		if errors.Is(err, repository.ErrOrderUserMissing) {
			return nil, errors.Wrap(domainerrors.ErrOrderUserMissing, "checkout failed")
		}

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	srv.log(ctx).Info("Checkout completed",
		slog.Any("orderID", order.ID),
		slog.String("transactionID", result.TransactionID),
	)

	return &usecase.CheckoutOutput{
		OrderID:       order.ID,
		TransactionID: result.TransactionID,
	}, nil
}

// ListOrders returns the user's orders, newest first.
func (srv *checkoutService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListCourseGrants returns every course entitlement held by the user.
func (srv *checkoutService) ListCourseGrants(ctx context.Context, userID uuid.UUID) ([]*entity.CourseAccessGrant, error) {
	grants, err := srv.entitlementRepo.ListByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list course grants", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list course grants")
	}

	return grants, nil
}

// DownloadCourse opens the course artifact for an entitled user. The
// entitlement check always runs before the existence check, so an
// unentitled caller learns nothing about which courses have content.
func (srv *checkoutService) DownloadCourse(ctx context.Context, userID uuid.UUID, courseID string) (*usecase.DownloadOutput, error) {
	hasAccess, err := srv.entitlementRepo.HasAccess(ctx, userID, courseID)
	if err != nil {
		srv.log(ctx).Error("Failed to check course access", slog.Any("userID", userID), slog.String("courseID", courseID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check course access")
	}
	if !hasAccess {
		srv.log(ctx).Info("Course download denied", slog.Any("userID", userID), slog.String("courseID", courseID))

		return nil, errors.Wrap(domainerrors.ErrCourseAccessDenied, "course download denied")
	}

	content, filename, err := srv.contentStore.Open(ctx, courseID)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			srv.log(ctx).Warn("Course content missing for entitled user", slog.String("courseID", courseID))

			return nil, errors.Wrap(domainerrors.ErrCourseContentNotFound, "course content missing")
		}

		return nil, errors.Wrap(err, "failed to open course content")
	}

	return &usecase.DownloadOutput{Content: content, Filename: filename}, nil
}

func toOrderItems(items []usecase.CheckoutItemInput) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, entity.OrderItem{
			ID:       item.ID,
			Type:     item.Type,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return out
}
