package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/catalog"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// supportService implements the SupportUsecase interface.
type supportService struct {
	generator service.ContentGenerator
	catalog   *catalog.Catalog
	logger    *slog.Logger
}

// SupportServiceParams holds dependencies for supportService, injected by Fx.
type SupportServiceParams struct {
	fx.In

	Generator service.ContentGenerator
	Catalog   *catalog.Catalog
	Logger    *slog.Logger
}

// NewSupportService is the constructor for supportService.
func NewSupportService(params SupportServiceParams) usecase.SupportUsecase {
	return &supportService{
		generator: params.Generator,
		catalog:   params.Catalog,
		logger:    params.Logger,
	}
}

func (srv *supportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Chat answers a free-form customer question. The generator never fails, so
// neither does this.
func (srv *supportService) Chat(ctx context.Context, input *usecase.ChatInput) *usecase.ChatOutput {
	srv.log(ctx).Debug("Answering support question")

	return &usecase.ChatOutput{
		Response: srv.generator.AnswerCustomerQuestion(ctx, input.Question),
	}
}

// CourseOutline drafts an outline for a catalog course. Unknown course ids
// are the only failure mode; generation itself always produces text.
func (srv *supportService) CourseOutline(ctx context.Context, courseID string) (string, error) {
	course, ok := srv.catalog.FindCourse(courseID)
	if !ok {
		return "", errors.Wrapf(domainerrors.ErrNotFound, "course %s not in catalog", courseID)
	}

	return srv.generator.GenerateCourseOutline(ctx, course.Title, course.Level, course.Duration), nil
}

// ProductDescription drafts marketing copy for a catalog product.
func (srv *supportService) ProductDescription(ctx context.Context, productID string) (string, error) {
	product, ok := srv.catalog.FindProduct(productID)
	if !ok {
		return "", errors.Wrapf(domainerrors.ErrNotFound, "product %s not in catalog", productID)
	}

	return srv.generator.GenerateProductDescription(ctx, product.Name, product.Features), nil
}
