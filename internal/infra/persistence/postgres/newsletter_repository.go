package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
)

// newsletterRepository writes signups to the remote 'newsletter' table.
type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository is the constructor for newsletterRepository.
func NewNewsletterRepository(db *gorm.DB) repository.NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (repo *newsletterRepository) Insert(ctx context.Context, signup *entity.NewsletterSignup) error {
	newsletterM := &model.NewsletterModel{
		Email:     strings.ToLower(signup.Email),
		CreatedAt: signup.Date,
	}

	if err := repo.db.WithContext(ctx).Create(newsletterM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSignup
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert newsletter signup")
	}

	return nil
}
