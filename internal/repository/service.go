package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/codeyousef/portfolio-sub001/internal/models"
	"gorm.io/gorm"
)

// ServiceRepository defines the interface for service data operations.
type ServiceRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Service, error)
	FindAll(ctx context.Context) ([]models.Service, error)
	FindFeatured(ctx context.Context) ([]models.Service, error)
	Save(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new ServiceRepository instance.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) FindByID(ctx context.Context, id int64) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).Preload("Features", orderByPosition).First(&service, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service by id %d: %w", id, err)
	}
	return &service, nil
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).Preload("Features", orderByPosition).
		Order("created_at ASC").Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) FindFeatured(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).Preload("Features", orderByPosition).
		Where("featured = ?", true).
		Order("created_at ASC").Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list featured services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) Save(ctx context.Context, service *models.Service) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if service.ID != 0 {
			if err := tx.Where("service_id = ?", service.ID).Delete(&models.ServiceFeature{}).Error; err != nil {
				return err
			}
			for i := range service.Features {
				service.Features[i].ID = 0
				service.Features[i].ServiceID = service.ID
			}
		}
		return tx.Save(service).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save service: %w", err)
	}
	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete service %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
