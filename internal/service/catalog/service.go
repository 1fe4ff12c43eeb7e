// Package catalog manages the service menu and the professional roster.
// Services are admin-editable; professionals are read-only seed data.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bellezapura/salon-api/internal/model"
	"github.com/bellezapura/salon-api/internal/repository"
)

type Service struct {
	serviceRepo repository.ServiceRepository
	profRepo    repository.ProfessionalRepository
}

func NewService(serviceRepo repository.ServiceRepository, profRepo repository.ProfessionalRepository) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		profRepo:    profRepo,
	}
}

func (s *Service) CreateService(ctx context.Context, req *model.CreateServiceRequest) (*model.Service, error) {
	svc := &model.Service{
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Sessions:    req.Sessions,
	}
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

func (s *Service) GetService(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	svc, err := s.serviceRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, id uuid.UUID, req *model.UpdateServiceRequest) (*model.Service, error) {
	svc, err := s.serviceRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Duration != nil {
		svc.Duration = *req.Duration
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.ImageURL != nil {
		svc.ImageURL = *req.ImageURL
	}
	if req.Category != nil {
		svc.Category = *req.Category
	}
	if req.Sessions != nil {
		svc.Sessions = *req.Sessions
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, id uuid.UUID) error {
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

func (s *Service) ListServices(ctx context.Context) ([]*model.Service, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *Service) GetProfessional(ctx context.Context, id uuid.UUID) (*model.Professional, error) {
	prof, err := s.profRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}
	return prof, nil
}

func (s *Service) ListProfessionals(ctx context.Context) ([]*model.Professional, error) {
	professionals, err := s.profRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list professionals: %w", err)
	}
	return professionals, nil
}
