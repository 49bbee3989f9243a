package services

import (
	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/Amadoujf/nouveauyama/internal/repository"
	"github.com/Amadoujf/nouveauyama/utils"
)

type ContactService struct {
	messages *repository.ContactRepository
}

func NewContactService(messages *repository.ContactRepository) *ContactService {
	return &ContactService{messages: messages}
}

func (s *ContactService) Submit(req models.ContactRequest) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		MessageID: utils.GenerateEntityID("msg_", 12, false),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
	}
	if err := s.messages.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *ContactService) List(limit, skip int) ([]models.ContactMessage, error) {
	return s.messages.List(limit, skip)
}

func (s *ContactService) MarkRead(messageID string) error {
	return s.messages.MarkRead(messageID)
}
