package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/codeyousef/portfolio-sub001/internal/models"
	"gorm.io/gorm"
)

// ProjectRepository defines the interface for project data operations.
type ProjectRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Project, error)
	FindAll(ctx context.Context) ([]models.Project, error)
	FindFeatured(ctx context.Context) ([]models.Project, error)
	Save(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository instance.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Preload("Technologies", orderByPosition).First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by id %d: %w", id, err)
	}
	return &project, nil
}

func (r *projectRepository) FindAll(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).Preload("Technologies", orderByPosition).
		Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (r *projectRepository) FindFeatured(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).Preload("Technologies", orderByPosition).
		Where("featured = ?", true).
		Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list featured projects: %w", err)
	}
	return projects, nil
}

func (r *projectRepository) Save(ctx context.Context, project *models.Project) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if project.ID != 0 {
			if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectTechnology{}).Error; err != nil {
				return err
			}
			for i := range project.Technologies {
				project.Technologies[i].ID = 0
				project.Technologies[i].ProjectID = project.ID
			}
		}
		return tx.Save(project).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete project %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// orderByPosition keeps owned value lists in their authored order.
func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
