package services

import (
	"context"
	"fmt"

	"github.com/Amadoujf/nouveauyama/internal/database/minio"
	"github.com/Amadoujf/nouveauyama/internal/event"
	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/pdf"
	"github.com/Amadoujf/nouveauyama/internal/repository"
	"github.com/Amadoujf/nouveauyama/utils"
)

type ContractService struct {
	contracts *repository.ContractRepository
	partners  partnerStore
	numbering *NumberingService
	renderer  *pdf.Renderer
	storage   *minio.MinioClient
	publisher *event.EmailPublisher
}

func NewContractService(
	contracts *repository.ContractRepository,
	partners partnerStore,
	numbering *NumberingService,
	renderer *pdf.Renderer,
	storage *minio.MinioClient,
	publisher *event.EmailPublisher,
) *ContractService {
	return &ContractService{
		contracts: contracts,
		partners:  partners,
		numbering: numbering,
		renderer:  renderer,
		storage:   storage,
		publisher: publisher,
	}
}

func (s *ContractService) Create(ctx context.Context, req models.CreateContractRequest) (*models.Contract, error) {
	if _, err := s.partners.GetByID(req.PartnerID); err != nil {
		return nil, err
	}

	contract := &models.Contract{
		ContractID:   utils.GenerateEntityID("ctr_", 12, false),
		PartnerID:    req.PartnerID,
		ContractType: req.ContractType,
		Title:        req.Title,
		Description:  req.Description,
		Clauses:      models.ClauseList(req.Clauses),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Value:        req.Value,
		Notes:        req.Notes,
		Status:       models.ContractDraft,
	}

	err := allocateAndInsert(ctx, s.numbering, models.DocTypeContract, func(number string) error {
		contract.ContractNumber = number
		return s.contracts.Create(contract)
	})
	if err != nil {
		return nil, err
	}

	return contract, nil
}

func (s *ContractService) Get(contractID string) (*models.Contract, error) {
	return s.contracts.GetByID(contractID)
}

func (s *ContractService) List(status models.ContractStatus, contractType models.ContractType, partnerID string) ([]models.Contract, error) {
	return s.contracts.List(status, contractType, partnerID)
}

func (s *ContractService) Activate(contractID string) (*models.Contract, error) {
	return s.contracts.Activate(contractID)
}

func (s *ContractService) Sign(contractID string) (*models.Contract, error) {
	return s.contracts.Sign(contractID)
}

func (s *ContractService) Expire(contractID string) (*models.Contract, error) {
	return s.contracts.Expire(contractID)
}

func (s *ContractService) Delete(contractID string) error {
	return s.contracts.Delete(contractID)
}

func (s *ContractService) GeneratePDF(ctx context.Context, contractID string) (string, error) {
	contract, err := s.contracts.GetByID(contractID)
	if err != nil {
		return "", err
	}
	partner, err := s.partners.GetByID(contract.PartnerID)
	if err != nil {
		return "", err
	}

	lines := make([]pdf.TableLine, 0, len(contract.Clauses)+2)
	lines = append(lines, pdf.TableLine{
		Left: fmt.Sprintf("Début : %s", contract.StartDate.Format("02/01/2006")),
	})
	if contract.EndDate != nil {
		lines = append(lines, pdf.TableLine{
			Left: fmt.Sprintf("Fin : %s", contract.EndDate.Format("02/01/2006")),
		})
	}
	for i, clause := range contract.Clauses {
		lines = append(lines, pdf.TableLine{
			Left: fmt.Sprintf("Article %d - %s : %s", i+1, clause.Title, clause.Content),
		})
	}

	data := pdf.DocumentData{
		DocLabel:    "Contrat",
		Number:      contract.ContractNumber,
		Date:        contract.CreatedAt.Format("02/01/2006"),
		PartnerName: partner.Name,
		PartnerInfo: partnerInfoLines(partner),
		Title:       contract.Title,
		Lines:       lines,
		Total:       contract.Value,
		Footer:      "YAMA+ Dakar, Sénégal",
	}

	rendered, err := s.renderer.Render(data)
	if err != nil {
		return "", err
	}

	url, err := uploadDocumentPDF(ctx, s.storage, contract.ContractNumber, rendered)
	if err != nil {
		return "", err
	}
	if err := s.contracts.SetPDFURL(contractID, url); err != nil {
		return "", err
	}

	return url, nil
}

func (s *ContractService) SendByEmail(ctx context.Context, contractID string) error {
	contract, err := s.contracts.GetByID(contractID)
	if err != nil {
		return err
	}
	partner, err := s.partners.GetByID(contract.PartnerID)
	if err != nil {
		return err
	}
	if partner.Email == nil || *partner.Email == "" {
		return models.ErrNotFound
	}

	url := ""
	if contract.PDFURL != nil {
		url = *contract.PDFURL
	} else {
		url, err = s.GeneratePDF(ctx, contractID)
		if err != nil {
			return err
		}
	}

	return s.publisher.PublishEmail(ctx, event.EmailEvent{
		To:       *partner.Email,
		Subject:  "Votre contrat " + contract.ContractNumber,
		Template: event.TemplateDocument,
		Data: map[string]interface{}{
			"partner_name": partner.Name,
			"doc_label":    "contrat",
			"doc_number":   contract.ContractNumber,
		},
		AttachmentURL: url,
	})
}
