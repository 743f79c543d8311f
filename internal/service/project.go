package service

import (
	"context"
	"errors"
	"time"

	"github.com/codeyousef/portfolio-sub001/internal/models"
	"github.com/codeyousef/portfolio-sub001/internal/repository"
)

// ProjectInput carries the writable fields of a project.
type ProjectInput struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	ModelURL     string   `json:"model_url"`
	GithubURL    string   `json:"github_url"`
	DemoURL      string   `json:"demo_url"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
}

// ProjectResponse is the outward shape of a project.
type ProjectResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	ModelURL     string    `json:"model_url"`
	GithubURL    string    `json:"github_url"`
	DemoURL      string    `json:"demo_url"`
	Technologies []string  `json:"technologies"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProjectService implements the project lifecycle.
type ProjectService interface {
	Create(ctx context.Context, input ProjectInput) (*ProjectResponse, error)
	Update(ctx context.Context, id int64, input ProjectInput) (*ProjectResponse, error)
	ToggleFeatured(ctx context.Context, id int64) (*ProjectResponse, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Get(ctx context.Context, id int64) (*ProjectResponse, error)
	List(ctx context.Context) ([]ProjectResponse, error)
	ListFeatured(ctx context.Context) ([]ProjectResponse, error)
}

type projectService struct {
	repo  repository.ProjectRepository
	clock Clock
}

// NewProjectService creates a new ProjectService instance.
func NewProjectService(repo repository.ProjectRepository, clock Clock) ProjectService {
	return &projectService{repo: repo, clock: clock}
}

func (s *projectService) Create(ctx context.Context, input ProjectInput) (*ProjectResponse, error) {
	now := s.clock.Now()
	project := &models.Project{
		Title:        input.Title,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		ModelURL:     input.ModelURL,
		GithubURL:    input.GithubURL,
		DemoURL:      input.DemoURL,
		Technologies: models.NewProjectTechnologies(input.Technologies),
		Featured:     input.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Save(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) Update(ctx context.Context, id int64, input ProjectInput) (*ProjectResponse, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	project.Title = input.Title
	project.Description = input.Description
	project.ImageURL = input.ImageURL
	project.ModelURL = input.ModelURL
	project.GithubURL = input.GithubURL
	project.DemoURL = input.DemoURL
	project.Technologies = models.NewProjectTechnologies(input.Technologies)
	project.Featured = input.Featured
	project.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) ToggleFeatured(ctx context.Context, id int64) (*ProjectResponse, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	project.Featured = !project.Featured
	project.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *projectService) Get(ctx context.Context, id int64) (*ProjectResponse, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) List(ctx context.Context) ([]ProjectResponse, error) {
	projects, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toProjectResponses(projects), nil
}

func (s *projectService) ListFeatured(ctx context.Context) ([]ProjectResponse, error) {
	projects, err := s.repo.FindFeatured(ctx)
	if err != nil {
		return nil, err
	}
	return toProjectResponses(projects), nil
}

func toProjectResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:           project.ID,
		Title:        project.Title,
		Description:  project.Description,
		ImageURL:     project.ImageURL,
		ModelURL:     project.ModelURL,
		GithubURL:    project.GithubURL,
		DemoURL:      project.DemoURL,
		Technologies: project.TechnologyValues(),
		Featured:     project.Featured,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	}
}

func toProjectResponses(projects []models.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, *toProjectResponse(&projects[i]))
	}
	return out
}
