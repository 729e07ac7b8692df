package service

import (
	"context"
	"fmt"

	"github.com/sossut/adp2/internal/model"
	"github.com/sossut/adp2/internal/repository"
)

// HousingCompanyService handles housing company operations
type HousingCompanyService struct {
	companyRepo repository.HousingCompanyRepo
}

// NewHousingCompanyService creates a new housing company service
func NewHousingCompanyService(companyRepo repository.HousingCompanyRepo) *HousingCompanyService {
	return &HousingCompanyService{
		companyRepo: companyRepo,
	}
}

// Create registers a housing company for an owner
func (s *HousingCompanyService) Create(ctx context.Context, ownerID string, req *model.CreateHousingCompanyRequest) (*model.HousingCompany, error) {
	company := &model.HousingCompany{
		Name:           req.Name,
		ApartmentCount: req.ApartmentCount,
		OwnerID:        ownerID,
	}

	id, err := s.companyRepo.Create(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("failed to create housing company: %w", err)
	}
	company.ID = id
	return company, nil
}

// GetByID retrieves a housing company, enforcing ownership for non-admins
func (s *HousingCompanyService) GetByID(ctx context.Context, id, userID, role string) (*model.HousingCompany, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrHousingCompanyNotFound
	}
	if role != model.RoleAdmin && company.OwnerID != userID {
		return nil, ErrUnauthorized
	}
	return company, nil
}

// GetByOwner lists an owner's housing companies
func (s *HousingCompanyService) GetByOwner(ctx context.Context, ownerID string) ([]*model.HousingCompany, error) {
	return s.companyRepo.GetByOwner(ctx, ownerID)
}
