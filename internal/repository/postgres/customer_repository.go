package postgres

import (
	"context"
	"errors"
	"fmt"
	"stayInsights/business/segmentation"
	"stayInsights/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

var _ segmentation.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		DB: db,
	}
}

func (r *CustomerRepository) FindAll(ctx context.Context, tenantID string) ([]domain.CustomerRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var customers []domain.CustomerRecord
	err := r.DB.WithContext(ctx).Where("tenant_id = ?", tenantID).Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find customers: %w", err)
	}

	return customers, nil
}

func (r *CustomerRepository) FindByIDs(ctx context.Context, tenantID string, ids []string) ([]domain.CustomerRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var customers []domain.CustomerRecord
	err := r.DB.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find customers by ids: %w", err)
	}

	return customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, tenantID, id string) (domain.CustomerRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.CustomerRecord{}, fmt.Errorf("context error: %w", err)
	}

	var customer domain.CustomerRecord
	err := r.DB.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CustomerRecord{}, errors.New("customer not found")
		}
		return domain.CustomerRecord{}, fmt.Errorf("failed to find customer: %w", err)
	}

	return customer, nil
}
