package service

import (
	"context"

	"jumatrek/internal/inquiries/repository"
	"jumatrek/internal/notify"
	"jumatrek/internal/validation"
	apperrors "jumatrek/pkg/errors"
	"jumatrek/pkg/logger"
	"jumatrek/pkg/model"
)

const SubmittedMessage = "Inquiry submitted successfully."

// Notifier is satisfied by *notify.Notifier.
type Notifier interface {
	InquiryCreated(ctx context.Context, inq *model.Inquiry) notify.Outcome
}

type InquiryService interface {
	// Create persists the inquiry and then notifies. Notification never
	// turns a stored inquiry into an error.
	Create(ctx context.Context, inq *model.Inquiry) (string, notify.Outcome, error)
	List(ctx context.Context) ([]*model.Inquiry, error)
}

type inquiryService struct {
	repo      repository.InquiryRepository
	validator *validation.Validator
	notifier  Notifier
	log       *logger.Logger
}

func NewInquiryService(repo repository.InquiryRepository, validator *validation.Validator, notifier Notifier, log *logger.Logger) InquiryService {
	return &inquiryService{
		repo:      repo,
		validator: validator,
		notifier:  notifier,
		log:       log,
	}
}

func (s *inquiryService) Create(ctx context.Context, inq *model.Inquiry) (string, notify.Outcome, error) {
	applyDefaults(inq)

	if err := s.validator.Validate(inq); err != nil {
		s.log.Warn("Inquiry validation failed", "email", inq.Email, "error", err)
		return "", notify.OutcomeSkipped, err
	}

	id, err := s.repo.Create(ctx, inq)
	if err != nil {
		s.log.Error("Failed to create inquiry", "email", inq.Email, "error", err)
		return "", notify.OutcomeSkipped, apperrors.Internal("Failed to submit inquiry", err)
	}

	outcome := s.notifier.InquiryCreated(ctx, inq)

	s.log.Info("Inquiry submitted successfully",
		"id", id,
		"trek_id", inq.TrekID,
		"travelers", inq.TravelerCount(),
		"notifications", outcome,
	)
	return id, outcome, nil
}

func (s *inquiryService) List(ctx context.Context) ([]*model.Inquiry, error) {
	inquiries, err := s.repo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list inquiries", "error", err)
		return nil, apperrors.Internal("Failed to retrieve inquiries", err)
	}
	return inquiries, nil
}

// applyDefaults fills the party size. Submitted values are stored as given.
func applyDefaults(inq *model.Inquiry) {
	if inq.Travelers == nil {
		one := 1
		inq.Travelers = &one
	}
}
