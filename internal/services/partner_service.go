package services

import (
	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/repository"
	"github.com/Amadoujf/nouveauyama/utils"
)

type PartnerService struct {
	partners *repository.PartnerRepository
}

func NewPartnerService(partners *repository.PartnerRepository) *PartnerService {
	return &PartnerService{partners: partners}
}

func (s *PartnerService) Create(req models.PartnerRequest) (*models.Partner, error) {
	partner := &models.Partner{
		PartnerID:   utils.GenerateEntityID("ptn_", 12, false),
		Name:        req.Name,
		CompanyName: req.CompanyName,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		Email:       req.Email,
		Phone:       req.Phone,
		NINEA:       req.NINEA,
		RCCM:        req.RCCM,
		LogoURL:     req.LogoURL,
		Notes:       req.Notes,
	}
	if err := s.partners.Create(partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (s *PartnerService) Get(partnerID string) (*models.Partner, error) {
	return s.partners.GetByID(partnerID)
}

func (s *PartnerService) List() ([]models.Partner, error) {
	return s.partners.List()
}

func (s *PartnerService) Update(partnerID string, req models.PartnerRequest) (*models.Partner, error) {
	partner, err := s.partners.GetByID(partnerID)
	if err != nil {
		return nil, err
	}

	partner.Name = req.Name
	partner.CompanyName = req.CompanyName
	partner.Address = req.Address
	partner.City = req.City
	partner.Country = req.Country
	partner.Email = req.Email
	partner.Phone = req.Phone
	partner.NINEA = req.NINEA
	partner.RCCM = req.RCCM
	partner.LogoURL = req.LogoURL
	partner.Notes = req.Notes

	if err := s.partners.Update(partner); err != nil {
		return nil, err
	}
	return partner, nil
}

// Delete refuses to remove a partner that still owns documents.
func (s *PartnerService) Delete(partnerID string) error {
	return s.partners.Delete(partnerID)
}
