package services

import (
	"context"
	"time"

	"lead-intake/config"
	"lead-intake/errors"
	"lead-intake/logger"
	"lead-intake/models"
	"lead-intake/store"
	"lead-intake/utils"

	"github.com/google/uuid"
)

// DuplicateEmailMessage is returned whenever a submission reuses an email
// that is already registered.
const DuplicateEmailMessage = "Email já cadastrado!"

// RegistrationService orchestrates the lead registration workflow:
// validation, duplicate check, persistence and best-effort operator
// notification.
type RegistrationService struct {
	store    *store.LeadStore
	notifier Notifier
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(leadStore *store.LeadStore, notifier Notifier) *RegistrationService {
	return &RegistrationService{store: leadStore, notifier: notifier}
}

// RegisterLead validates, deduplicates and persists a lead submission and
// returns the created record's public identity. Notification and event
// publishing failures are logged and never fail the registration.
func (s *RegistrationService) RegisterLead(ctx context.Context, sub *models.LeadSubmission) (*models.LeadIdentity, error) {
	if violations := utils.ValidateSubmission(sub); len(violations) > 0 {
		return nil, errors.E(errors.Invalid, "dados do lead inválidos", violations)
	}

	if _, err := s.store.FindByEmail(ctx, sub.Email); err == nil {
		return nil, errors.E(errors.Conflict, DuplicateEmailMessage)
	} else if errors.KindOf(err) != errors.NotFound {
		return nil, err
	}

	lead := &models.Lead{
		Name:           sub.Name,
		TradeName:      sub.Name,
		CNPJ:           sub.CNPJ,
		Phone:          sub.Phone,
		Note:           sub.Note,
		Identifier:     uuid.NewString(),
		Email:          sub.Email,
		EmailValidated: false,
		ValidationKey:  uuid.NewString(),
		UserType:       models.UserTypeAdministrator,
		CreatedAt:      time.Now(),
		ValidatedAt:    nil,
	}

	created, err := s.store.Insert(ctx, lead)
	if err != nil {
		// The unique index is the authoritative duplicate check: a race
		// between two registrations can pass the lookup above and still
		// collide here.
		if errors.KindOf(err) == errors.Conflict {
			return nil, errors.E(errors.Conflict, DuplicateEmailMessage, err)
		}
		return nil, err
	}

	logger.Info("Lead created: ID=%d, Email=%s, Identifier=%s", created.ID, created.Email, created.Identifier)

	subject, body := NewLeadEmail(created)
	if err := s.notifier.Send(config.NotifyList(), subject, body); err != nil {
		logger.Warn("Failed to send new lead notification for lead ID %d: %v", created.ID, err)
	}

	PublishLeadCreatedEvent(created)

	return &models.LeadIdentity{Email: created.Email, Identifier: created.Identifier}, nil
}

// ListLeads returns all registered leads.
func (s *RegistrationService) ListLeads(ctx context.Context) ([]models.Lead, error) {
	return s.store.List(ctx)
}
