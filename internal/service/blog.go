package service

import (
	"context"
	"errors"
	"time"

	"github.com/codeyousef/portfolio-sub001/internal/models"
	"github.com/codeyousef/portfolio-sub001/internal/repository"
	"github.com/codeyousef/portfolio-sub001/internal/utils"
)

// ErrInvalidSlug is returned when neither the supplied slug nor the title
// yields a usable slug.
var ErrInvalidSlug = errors.New("invalid slug")

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// BlogPostInput carries the writable fields of a post. ReadingTime, when
// set, overrides the estimate derived from the content; leaving it unset
// falls back to the derived value.
type BlogPostInput struct {
	Title       string   `json:"title" binding:"required"`
	Summary     string   `json:"summary"`
	Content     string   `json:"content"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
	Published   bool     `json:"published"`
	Slug        string   `json:"slug"`
	ReadingTime *int     `json:"reading_time"`
}

// BlogPostResponse is the outward shape of a post, persisted fields plus
// the derived reading time.
type BlogPostResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	ImageURL    string     `json:"image_url"`
	Tags        []string   `json:"tags"`
	Published   bool       `json:"published"`
	PublishDate *time.Time `json:"publish_date,omitempty"`
	ReadingTime int        `json:"reading_time"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BlogPage is one page of posts. Page indexes are 1-based.
type BlogPage struct {
	Items      []BlogPostResponse `json:"items"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	Total      int64              `json:"total"`
	TotalPages int64              `json:"total_pages"`
}

// BlogService implements the blog post publish/draft lifecycle.
type BlogService interface {
	Create(ctx context.Context, input BlogPostInput) (*BlogPostResponse, error)
	// Update replaces the writable fields of a post. It returns nil
	// without error when the post does not exist.
	Update(ctx context.Context, id int64, input BlogPostInput) (*BlogPostResponse, error)
	TogglePublished(ctx context.Context, id int64) (*BlogPostResponse, error)
	// Delete reports whether a post was removed; a missing id is not
	// an error.
	Delete(ctx context.Context, id int64) (bool, error)
	GetBySlug(ctx context.Context, slug string, includeHidden bool) (*BlogPostResponse, error)
	ListAll(ctx context.Context) ([]BlogPostResponse, error)
	// ListPublished pages through published posts, newest publish date
	// first. Page is 1-based; out-of-range values are clamped.
	ListPublished(ctx context.Context, page, size int) (*BlogPage, error)
	ListByTag(ctx context.Context, tag string, page, size int) (*BlogPage, error)
}

type blogService struct {
	repo  repository.BlogRepository
	clock Clock
}

// NewBlogService creates a new BlogService instance.
func NewBlogService(repo repository.BlogRepository, clock Clock) BlogService {
	return &blogService{repo: repo, clock: clock}
}

func (s *blogService) Create(ctx context.Context, input BlogPostInput) (*BlogPostResponse, error) {
	slug := input.Slug
	if slug == "" {
		slug = utils.GenerateSlug(input.Title)
	} else {
		slug = utils.GenerateSlug(slug)
	}
	if slug == "" {
		return nil, ErrInvalidSlug
	}

	now := s.clock.Now()
	post := &models.BlogPost{
		Title:       input.Title,
		Slug:        slug,
		Summary:     input.Summary,
		Content:     input.Content,
		ImageURL:    input.ImageURL,
		Tags:        models.NewBlogPostTags(input.Tags),
		Published:   input.Published,
		ReadingTime: input.ReadingTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Published {
		post.PublishDate = &now
	}

	if err := s.repo.Save(ctx, post); err != nil {
		return nil, err
	}
	return toBlogResponse(post), nil
}

func (s *blogService) Update(ctx context.Context, id int64, input BlogPostInput) (*BlogPostResponse, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.GenerateSlug(input.Title)
	} else {
		slug = utils.GenerateSlug(slug)
	}
	if slug == "" {
		return nil, ErrInvalidSlug
	}

	post.Title = input.Title
	post.Slug = slug
	post.Summary = input.Summary
	post.Content = input.Content
	post.ImageURL = input.ImageURL
	post.Tags = models.NewBlogPostTags(input.Tags)
	post.ReadingTime = input.ReadingTime
	s.applyPublishState(post, input.Published)

	if err := s.repo.Save(ctx, post); err != nil {
		return nil, err
	}
	return toBlogResponse(post), nil
}

func (s *blogService) TogglePublished(ctx context.Context, id int64) (*BlogPostResponse, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	s.applyPublishState(post, !post.Published)

	if err := s.repo.Save(ctx, post); err != nil {
		return nil, err
	}
	return toBlogResponse(post), nil
}

// applyPublishState flips the published flag and refreshes updated_at.
// The publish date is stamped only on the very first transition to
// published; unpublishing and republishing later keeps the original date.
func (s *blogService) applyPublishState(post *models.BlogPost, published bool) {
	now := s.clock.Now()
	if published && post.PublishDate == nil {
		post.PublishDate = &now
	}
	post.Published = published
	post.UpdatedAt = now
}

func (s *blogService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *blogService) GetBySlug(ctx context.Context, slug string, includeHidden bool) (*BlogPostResponse, error) {
	post, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !includeHidden && !post.IsVisible(s.clock.Now()) {
		return nil, nil
	}
	return toBlogResponse(post), nil
}

func (s *blogService) ListAll(ctx context.Context) ([]BlogPostResponse, error) {
	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toBlogResponses(posts), nil
}

func (s *blogService) ListPublished(ctx context.Context, page, size int) (*BlogPage, error) {
	page, size = normalizePage(page, size)
	posts, total, err := s.repo.FindPublished(ctx, s.clock.Now(), size, (page-1)*size)
	if err != nil {
		return nil, err
	}
	return newBlogPage(posts, page, size, total), nil
}

func (s *blogService) ListByTag(ctx context.Context, tag string, page, size int) (*BlogPage, error) {
	page, size = normalizePage(page, size)
	posts, total, err := s.repo.FindPublishedByTag(ctx, tag, s.clock.Now(), size, (page-1)*size)
	if err != nil {
		return nil, err
	}
	return newBlogPage(posts, page, size, total), nil
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}

func newBlogPage(posts []models.BlogPost, page, size int, total int64) *BlogPage {
	totalPages := (total + int64(size) - 1) / int64(size)
	return &BlogPage{
		Items:      toBlogResponses(posts),
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	}
}

func toBlogResponse(post *models.BlogPost) *BlogPostResponse {
	readingTime := utils.EstimateReadingMinutes(post.Content)
	if post.ReadingTime != nil {
		readingTime = *post.ReadingTime
	}
	return &BlogPostResponse{
		ID:          post.ID,
		Title:       post.Title,
		Slug:        post.Slug,
		Summary:     post.Summary,
		Content:     post.Content,
		ImageURL:    post.ImageURL,
		Tags:        post.TagValues(),
		Published:   post.Published,
		PublishDate: post.PublishDate,
		ReadingTime: readingTime,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

func toBlogResponses(posts []models.BlogPost) []BlogPostResponse {
	out := make([]BlogPostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, *toBlogResponse(&posts[i]))
	}
	return out
}
