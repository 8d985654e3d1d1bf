package service

import (
	"context"
	"errors"

	"jumatrek/internal/store"
	"jumatrek/internal/treks/repository"
	"jumatrek/internal/validation"
	apperrors "jumatrek/pkg/errors"
	"jumatrek/pkg/logger"
	"jumatrek/pkg/model"
	"jumatrek/pkg/sanitizer"
)

const resourceName = "Trek"

type TrekService interface {
	List(ctx context.Context, filter model.TrekFilter) ([]*model.Trek, error)
	GetByID(ctx context.Context, id string) (*model.Trek, error)
	Create(ctx context.Context, trek *model.Trek) (string, error)
	Update(ctx context.Context, id string, trek *model.Trek) (*model.Trek, error)
	Delete(ctx context.Context, id string) error
}

type trekService struct {
	repo      repository.TrekRepository
	validator *validation.Validator
	log       *logger.Logger
}

func NewTrekService(repo repository.TrekRepository, validator *validation.Validator, log *logger.Logger) TrekService {
	return &trekService{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

func (s *trekService) List(ctx context.Context, filter model.TrekFilter) ([]*model.Trek, error) {
	treks, err := s.repo.Find(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list treks", "error", err)
		return nil, apperrors.Internal("Failed to retrieve treks", err)
	}

	s.log.Debug("Treks listed", "results_count", len(treks))
	return treks, nil
}

func (s *trekService) GetByID(ctx context.Context, id string) (*model.Trek, error) {
	if !store.IsValidID(id) {
		return nil, apperrors.InvalidID(id)
	}

	trek, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err, id, "Failed to retrieve trek")
	}
	return trek, nil
}

func (s *trekService) Create(ctx context.Context, trek *model.Trek) (string, error) {
	applyDefaults(trek)

	if err := s.validator.Validate(trek); err != nil {
		s.log.Warn("Trek validation failed", "title", trek.Title, "error", err)
		return "", err
	}

	id, err := s.repo.Create(ctx, trek)
	if err != nil {
		s.log.Error("Failed to create trek", "title", trek.Title, "error", err)
		return "", s.mapError(err, "", "Failed to create trek")
	}

	s.log.Info("Trek created successfully",
		"id", id,
		"title", trek.Title,
		"region", trek.Region,
	)
	return id, nil
}

func (s *trekService) Update(ctx context.Context, id string, trek *model.Trek) (*model.Trek, error) {
	if !store.IsValidID(id) {
		return nil, apperrors.InvalidID(id)
	}

	applyDefaults(trek)
	if err := s.validator.Validate(trek); err != nil {
		s.log.Warn("Trek validation failed", "id", id, "title", trek.Title, "error", err)
		return nil, err
	}

	matched, err := s.repo.Update(ctx, id, trek)
	if err != nil {
		s.log.Error("Failed to update trek", "id", id, "error", err)
		return nil, s.mapError(err, id, "Failed to update trek")
	}
	if matched == 0 {
		return nil, apperrors.NotFoundWithID(resourceName, id)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err, id, "Failed to retrieve trek")
	}

	s.log.Info("Trek updated successfully", "id", id, "title", updated.Title)
	return updated, nil
}

func (s *trekService) Delete(ctx context.Context, id string) error {
	if !store.IsValidID(id) {
		return apperrors.InvalidID(id)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete trek", "id", id, "error", err)
		return s.mapError(err, id, "Failed to delete trek")
	}
	if deleted == 0 {
		return apperrors.NotFoundWithID(resourceName, id)
	}

	s.log.Info("Trek deleted successfully", "id", id)
	return nil
}

func (s *trekService) mapError(err error, id, message string) error {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return apperrors.InvalidID(id)
	case errors.Is(err, store.ErrNotFound):
		return apperrors.NotFoundWithID(resourceName, id)
	case errors.Is(err, store.ErrDuplicate):
		return apperrors.Conflict("Trek already exists")
	default:
		return apperrors.Internal(message, err)
	}
}

// applyDefaults fills absent lists. Submitted values are stored as given.
func applyDefaults(trek *model.Trek) {
	trek.Highlights = sanitizer.OrEmpty(trek.Highlights)
	trek.Itinerary = sanitizer.OrEmpty(trek.Itinerary)
	trek.Inclusions = sanitizer.OrEmpty(trek.Inclusions)
	trek.Exclusions = sanitizer.OrEmpty(trek.Exclusions)
	trek.Images = sanitizer.OrEmpty(trek.Images)
}
