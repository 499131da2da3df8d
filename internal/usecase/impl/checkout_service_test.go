package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service         usecase.CheckoutUsecase
	txManager       *mockRepo.MockTransactionManager
	userRepo        *mockRepo.MockUserRepository
	orderRepo       *mockRepo.MockOrderRepository
	entitlementRepo *mockRepo.MockEntitlementRepository
	gateway         *mockSvc.MockPaymentGateway
	contentStore    *mockSvc.MockContentStore
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	entitlementRepo := mockRepo.NewMockEntitlementRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	contentStore := mockSvc.NewMockContentStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCheckoutService(CheckoutServiceParams{
		TxManager:       txManager,
		UserRepo:        userRepo,
		OrderRepo:       orderRepo,
		EntitlementRepo: entitlementRepo,
		Gateway:         gateway,
		ContentStore:    contentStore,
		Config:          &config.Config{Payment: &config.PaymentConfig{Currency: "usd"}},
		Logger:          logger,
	})

	return checkoutServiceFixtures{
		service:         service,
		txManager:       txManager,
		userRepo:        userRepo,
		orderRepo:       orderRepo,
		entitlementRepo: entitlementRepo,
		gateway:         gateway,
		contentStore:    contentStore,
	}
}

func testCheckoutBuyer(userID uuid.UUID) *entity.User {
	return &entity.User{ID: userID, Name: "Test User", Email: "buyer@example.com"}
}

// buyerInfo is the customer identity the gateway must receive: the
// logged-in account, not the cardholder name.
func buyerInfo(user *entity.User) service.CustomerInfo {
	return service.CustomerInfo{Name: user.Name, Email: user.Email}
}

func testCheckoutInput(userID uuid.UUID) *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		UserID: userID,
		Items: []usecase.CheckoutItemInput{
			{ID: "course-ai", Type: entity.ItemTypeCourse, Name: "AI Fundamentals", Quantity: 1, Price: 49.99},
			{ID: "prod-hat", Type: entity.ItemTypeProduct, Name: "Logo Hat", Quantity: 2, Price: 12.50},
		},
		Amount: 74.99,
		Card: service.CardDetails{
			Number:   "4242424242424242",
			Name:     "Test User",
			ExpMonth: "12",
			ExpYear:  "30",
			CVV:      "123",
		},
	}
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	buyer := testCheckoutBuyer(userID)
	input := testCheckoutInput(userID)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(buyer, nil)
	fx.gateway.EXPECT().
		Authorize(ctx, input.Amount, "usd", input.Card, buyerInfo(buyer)).
		Return(&service.AuthorizationResult{Approved: true, TransactionID: "txn_abc123"}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockEntitlementRepo := mockRepo.NewMockEntitlementRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().EntitlementRepo().Return(mockEntitlementRepo)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()
					assert.Equal(t, userID, order.UserID)
					assert.Equal(t, entity.OrderStatusCompleted, order.Status)
					assert.Equal(t, "txn_abc123", order.TransactionID)
					assert.Len(t, order.Items, 2)
				}).
				Return(nil)

			// Only the course line produces a grant.
			mockEntitlementRepo.EXPECT().Grant(ctx, userID, "course-ai").Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.Checkout(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "txn_abc123", output.TransactionID)
	assert.NotEqual(t, uuid.Nil, output.OrderID)
}

func TestCheckoutService_Checkout_Declined(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	buyer := testCheckoutBuyer(userID)
	input := testCheckoutInput(userID)
	input.Card.CVV = "12"

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(buyer, nil)
	fx.gateway.EXPECT().
		Authorize(ctx, input.Amount, "usd", input.Card, buyerInfo(buyer)).
		Return(&service.AuthorizationResult{Approved: false, Reason: "Invalid card details"}, nil)

	// No Execute expectation: a declined payment must not touch the database.
	output, err := fx.service.Checkout(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PAYMENT_DECLINED", appErr.ErrorCode())
	assert.Equal(t, "Invalid card details", appErr.Message())
}

func TestCheckoutService_Checkout_UnknownUser(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := testCheckoutInput(userID)

	// No Authorize or Execute expectations: an unknown user is rejected
	// before the card is ever charged.
	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Checkout(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderUserMissing))
}

func TestCheckoutService_Checkout_UserDeletedMidCheckout(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	buyer := testCheckoutBuyer(userID)
	input := testCheckoutInput(userID)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(buyer, nil)
	fx.gateway.EXPECT().
		Authorize(ctx, input.Amount, "usd", input.Card, buyerInfo(buyer)).
		Return(&service.AuthorizationResult{Approved: true, TransactionID: "txn_abc123"}, nil)

	// The account vanished between the lookup and the order insert; the
	// foreign key surfaces the same missing-user outcome.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(repository.ErrOrderUserMissing, "failed to create order"))

	output, err := fx.service.Checkout(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderUserMissing))
}

func TestCheckoutService_Checkout_GrantFailureRollsBack(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	buyer := testCheckoutBuyer(userID)
	input := testCheckoutInput(userID)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(buyer, nil)
	fx.gateway.EXPECT().
		Authorize(ctx, input.Amount, "usd", input.Card, buyerInfo(buyer)).
		Return(&service.AuthorizationResult{Approved: true, TransactionID: "txn_abc123"}, nil)

	grantErr := errors.New("grant insert failed")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockEntitlementRepo := mockRepo.NewMockEntitlementRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().EntitlementRepo().Return(mockEntitlementRepo)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Return(nil)
			mockEntitlementRepo.EXPECT().
				Grant(ctx, userID, "course-ai").
				Return(grantErr)

			return fn(mockFactory)
		})

	output, err := fx.service.Checkout(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, grantErr))
}

func TestCheckoutService_ListOrders(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	orders := []*entity.Order{
		{ID: uuid.New(), UserID: userID, Amount: 74.99},
		{ID: uuid.New(), UserID: userID, Amount: 19.99},
	}

	fx.orderRepo.EXPECT().ListByUserID(ctx, userID).Return(orders, nil)

	got, err := fx.service.ListOrders(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestCheckoutService_ListCourseGrants(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	grants := []*entity.CourseAccessGrant{
		{ID: uuid.New(), UserID: userID, CourseID: "course-ai"},
	}

	fx.entitlementRepo.EXPECT().ListByUserID(ctx, userID).Return(grants, nil)

	got, err := fx.service.ListCourseGrants(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, grants, got)
}

func TestCheckoutService_DownloadCourse_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.entitlementRepo.EXPECT().HasAccess(ctx, userID, "course-ai").Return(true, nil)
	fx.contentStore.EXPECT().
		Open(ctx, "course-ai").
		Return(io.NopCloser(strings.NewReader("zip-bytes")), "course-ai.zip", nil)

	output, err := fx.service.DownloadCourse(ctx, userID, "course-ai")

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "course-ai.zip", output.Filename)

	content, err := io.ReadAll(output.Content)
	require.NoError(t, err)
	assert.Equal(t, "zip-bytes", string(content))
}

func TestCheckoutService_DownloadCourse_NoEntitlement(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()

	// The store is never consulted for an unentitled user.
	fx.entitlementRepo.EXPECT().HasAccess(ctx, userID, "course-ai").Return(false, nil)

	output, err := fx.service.DownloadCourse(ctx, userID, "course-ai")

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCourseAccessDenied))
}

func TestCheckoutService_DownloadCourse_ContentMissing(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.entitlementRepo.EXPECT().HasAccess(ctx, userID, "course-ghost").Return(true, nil)
	fx.contentStore.EXPECT().
		Open(ctx, "course-ghost").
		Return(nil, "", service.ErrContentNotFound)

	output, err := fx.service.DownloadCourse(ctx, userID, "course-ghost")

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCourseContentNotFound))
}
