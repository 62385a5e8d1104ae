package service

import (
	"context"
	"log/slog"

	"github.com/chari-wallet-mock/internal/domain/beneficiary"
	"github.com/chari-wallet-mock/internal/pagination"
)

// BeneficiaryServiceImpl implements the BeneficiaryService interface
type BeneficiaryServiceImpl struct {
	beneficiaries beneficiary.Repository
	logger        *slog.Logger
}

// NewBeneficiaryService creates a new beneficiary service
func NewBeneficiaryService(logger *slog.Logger, beneficiaries beneficiary.Repository) BeneficiaryService {
	return &BeneficiaryServiceImpl{
		beneficiaries: beneficiaries,
		logger:        logger,
	}
}

// List returns one page of saved beneficiaries
func (s *BeneficiaryServiceImpl) List(ctx context.Context, q pagination.Query) ([]*beneficiary.Beneficiary, pagination.Meta, error) {
	all, err := s.beneficiaries.List(ctx)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return pagination.Slice(all, q)
}

// Create validates and stores a new beneficiary
func (s *BeneficiaryServiceImpl) Create(ctx context.Context, name, phoneNumber, rib, email string) (*beneficiary.Beneficiary, error) {
	b, err := beneficiary.New(name, phoneNumber, rib, email)
	if err != nil {
		return nil, err
	}

	created, err := s.beneficiaries.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Beneficiary created", "id", created.ID, "name", created.Name)
	return created, nil
}
