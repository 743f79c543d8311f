package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codeyousef/portfolio-sub001/internal/models"
	"gorm.io/gorm"
)

// BlogRepository defines the interface for blog post data operations.
type BlogRepository interface {
	FindByID(ctx context.Context, id int64) (*models.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	FindAll(ctx context.Context) ([]models.BlogPost, error)
	// FindPublished returns posts publicly visible at the given instant
	// (published, publish date not in the future), ordered by publish
	// date descending, plus the total visible count for pagination.
	FindPublished(ctx context.Context, now time.Time, limit, offset int) ([]models.BlogPost, int64, error)
	FindPublishedByTag(ctx context.Context, tag string, now time.Time, limit, offset int) ([]models.BlogPost, int64, error)
	Save(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new BlogRepository instance.
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) FindByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).Preload("Tags").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find blog post by id %d: %w", id, err)
	}
	return &post, nil
}

func (r *blogRepository) FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).Preload("Tags").Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find blog post by slug %s: %w", slug, err)
	}
	return &post, nil
}

func (r *blogRepository) FindAll(ctx context.Context) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.WithContext(ctx).Preload("Tags").Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return posts, nil
}

func (r *blogRepository) FindPublished(ctx context.Context, now time.Time, limit, offset int) ([]models.BlogPost, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.BlogPost{}).
		Where("published = ?", true).
		Where("publish_date <= ?", now)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count published posts: %w", err)
	}

	var posts []models.BlogPost
	err := r.db.WithContext(ctx).Preload("Tags").
		Where("published = ?", true).
		Where("publish_date <= ?", now).
		Order("publish_date DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list published posts: %w", err)
	}
	return posts, total, nil
}

func (r *blogRepository) FindPublishedByTag(ctx context.Context, tag string, now time.Time, limit, offset int) ([]models.BlogPost, int64, error) {
	matching := r.db.WithContext(ctx).Model(&models.BlogPostTag{}).
		Select("post_id").Where("value = ?", tag)

	base := r.db.WithContext(ctx).Model(&models.BlogPost{}).
		Where("published = ?", true).
		Where("publish_date <= ?", now).
		Where("id IN (?)", matching)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts for tag %s: %w", tag, err)
	}

	var posts []models.BlogPost
	err := r.db.WithContext(ctx).Preload("Tags").
		Where("published = ?", true).
		Where("publish_date <= ?", now).
		Where("id IN (?)", matching).
		Order("publish_date DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts for tag %s: %w", tag, err)
	}
	return posts, total, nil
}

// Save inserts the post when it has no id and updates it otherwise. The
// owned tag rows are replaced wholesale on update. A slug collision maps
// to ErrDuplicateSlug.
func (r *blogRepository) Save(ctx context.Context, post *models.BlogPost) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if post.ID != 0 {
			if err := tx.Where("post_id = ?", post.ID).Delete(&models.BlogPostTag{}).Error; err != nil {
				return err
			}
			for i := range post.Tags {
				post.Tags[i].ID = 0
				post.Tags[i].PostID = post.ID
			}
		}
		return tx.Save(post).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSlug
		}
		return fmt.Errorf("failed to save blog post: %w", err)
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.BlogPost{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete blog post %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
