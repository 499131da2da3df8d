// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// entitlementRepository implements the domain.EntitlementRepository interface using GORM.
type entitlementRepository struct {
	db *gorm.DB
}

// NewEntitlementRepository is the constructor for entitlementRepository.
func NewEntitlementRepository(db *gorm.DB) repository.EntitlementRepository {
	return &entitlementRepository{db: db}
}

// Grant records course access for a user. The ON CONFLICT DO NOTHING clause
// over the (user_id, course_id) unique index makes repeat grants a no-op, so
// buying a course twice never fails the checkout.
func (repo *entitlementRepository) Grant(ctx context.Context, userID uuid.UUID, courseID string) error {
	grantM := &model.CourseGrantModel{
		UserID:   userID,
		CourseID: courseID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(grantM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderUserMissing
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to grant course access")
	}

	return nil
}

// HasAccess reports whether the user holds a grant for the course.
func (repo *entitlementRepository) HasAccess(ctx context.Context, userID uuid.UUID, courseID string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CourseGrantModel{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error; err != nil {
		return false, errors.WithStack(err)
	}

	return count > 0, nil
}

// ListByUserID retrieves every course grant held by the user, oldest first.
func (repo *entitlementRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.CourseAccessGrant, error) {
	var grantModels []*model.CourseGrantModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("granted_at ASC").
		Find(&grantModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	grants := make([]*entity.CourseAccessGrant, 0, len(grantModels))
	for _, grantM := range grantModels {
		grants = append(grants, toCourseGrantDomain(grantM))
	}

	return grants, nil
}

// --- Mapper Functions ---

// toCourseGrantDomain converts a GORM CourseGrantModel to a domain CourseAccessGrant entity.
func toCourseGrantDomain(data *model.CourseGrantModel) *entity.CourseAccessGrant {
	if data == nil {
		return nil
	}

	return &entity.CourseAccessGrant{
		ID:        data.ID,
		UserID:    data.UserID,
		CourseID:  data.CourseID,
		GrantedAt: data.GrantedAt,
	}
}
