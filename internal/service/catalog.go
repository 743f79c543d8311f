package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/codeyousef/portfolio-sub001/internal/models"
	"github.com/codeyousef/portfolio-sub001/internal/repository"
)

// ServiceInput carries the writable fields of an offered service.
type ServiceInput struct {
	Title            string   `json:"title" binding:"required"`
	ShortDescription string   `json:"short_description"`
	FullDescription  string   `json:"full_description"`
	Icon             string   `json:"icon"`
	Price            *string  `json:"price"`
	Features         []string `json:"features"`
	CtaText          string   `json:"cta_text"`
	CtaLink          string   `json:"cta_link"`
	DetailsLink      string   `json:"details_link"`
	DisplayOrder     *int     `json:"display_order"`
	Featured         bool     `json:"featured"`
}

// ServiceResponse is the outward shape of an offered service.
type ServiceResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_description"`
	FullDescription  string    `json:"full_description"`
	Icon             string    `json:"icon"`
	Price            *string   `json:"price,omitempty"`
	Features         []string  `json:"features"`
	CtaText          string    `json:"cta_text"`
	CtaLink          string    `json:"cta_link"`
	DetailsLink      string    `json:"details_link"`
	DisplayOrder     int       `json:"display_order"`
	Featured         bool      `json:"featured"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CatalogService implements the lifecycle of offered services.
type CatalogService interface {
	Create(ctx context.Context, input ServiceInput) (*ServiceResponse, error)
	Update(ctx context.Context, id int64, input ServiceInput) (*ServiceResponse, error)
	ToggleFeatured(ctx context.Context, id int64) (*ServiceResponse, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Get(ctx context.Context, id int64) (*ServiceResponse, error)
	// ListOrderedByDisplay sorts ascending by display order; equal
	// orders keep creation order.
	ListOrderedByDisplay(ctx context.Context) ([]ServiceResponse, error)
	ListFeatured(ctx context.Context) ([]ServiceResponse, error)
}

type catalogService struct {
	repo  repository.ServiceRepository
	clock Clock
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(repo repository.ServiceRepository, clock Clock) CatalogService {
	return &catalogService{repo: repo, clock: clock}
}

func (s *catalogService) Create(ctx context.Context, input ServiceInput) (*ServiceResponse, error) {
	now := s.clock.Now()
	displayOrder := models.DefaultDisplayOrder
	if input.DisplayOrder != nil {
		displayOrder = *input.DisplayOrder
	}
	svc := &models.Service{
		Title:            input.Title,
		ShortDescription: input.ShortDescription,
		FullDescription:  input.FullDescription,
		Icon:             input.Icon,
		Price:            input.Price,
		Features:         models.NewServiceFeatures(input.Features),
		CtaText:          input.CtaText,
		CtaLink:          input.CtaLink,
		DetailsLink:      input.DetailsLink,
		DisplayOrder:     displayOrder,
		Featured:         input.Featured,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Save(ctx, svc); err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

func (s *catalogService) Update(ctx context.Context, id int64, input ServiceInput) (*ServiceResponse, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	svc.Title = input.Title
	svc.ShortDescription = input.ShortDescription
	svc.FullDescription = input.FullDescription
	svc.Icon = input.Icon
	svc.Price = input.Price
	svc.Features = models.NewServiceFeatures(input.Features)
	svc.CtaText = input.CtaText
	svc.CtaLink = input.CtaLink
	svc.DetailsLink = input.DetailsLink
	if input.DisplayOrder != nil {
		svc.DisplayOrder = *input.DisplayOrder
	}
	svc.Featured = input.Featured
	svc.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, svc); err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

func (s *catalogService) ToggleFeatured(ctx context.Context, id int64) (*ServiceResponse, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	svc.Featured = !svc.Featured
	svc.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, svc); err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

func (s *catalogService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *catalogService) Get(ctx context.Context, id int64) (*ServiceResponse, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toServiceResponse(svc), nil
}

func (s *catalogService) ListOrderedByDisplay(ctx context.Context) ([]ServiceResponse, error) {
	services, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sortByDisplayOrder(services)
	return toServiceResponses(services), nil
}

func (s *catalogService) ListFeatured(ctx context.Context) ([]ServiceResponse, error) {
	services, err := s.repo.FindFeatured(ctx)
	if err != nil {
		return nil, err
	}
	sortByDisplayOrder(services)
	return toServiceResponses(services), nil
}

// sortByDisplayOrder orders ascending by display order, breaking ties by
// creation time ascending.
func sortByDisplayOrder(services []models.Service) {
	sort.SliceStable(services, func(i, j int) bool {
		if services[i].DisplayOrder != services[j].DisplayOrder {
			return services[i].DisplayOrder < services[j].DisplayOrder
		}
		return services[i].CreatedAt.Before(services[j].CreatedAt)
	})
}

func toServiceResponse(svc *models.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:               svc.ID,
		Title:            svc.Title,
		ShortDescription: svc.ShortDescription,
		FullDescription:  svc.FullDescription,
		Icon:             svc.Icon,
		Price:            svc.Price,
		Features:         svc.FeatureValues(),
		CtaText:          svc.CtaText,
		CtaLink:          svc.CtaLink,
		DetailsLink:      svc.DetailsLink,
		DisplayOrder:     svc.DisplayOrder,
		Featured:         svc.Featured,
		CreatedAt:        svc.CreatedAt,
		UpdatedAt:        svc.UpdatedAt,
	}
}

func toServiceResponses(services []models.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for i := range services {
		out = append(out, *toServiceResponse(&services[i]))
	}
	return out
}
