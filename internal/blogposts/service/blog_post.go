package service

import (
	"context"
	"errors"

	"jumatrek/internal/blogposts/repository"
	"jumatrek/internal/store"
	"jumatrek/internal/validation"
	apperrors "jumatrek/pkg/errors"
	"jumatrek/pkg/logger"
	"jumatrek/pkg/model"
	"jumatrek/pkg/sanitizer"
)

// Error messages read "Post not found".
const resourceName = "Post"

type BlogPostService interface {
	List(ctx context.Context, filter model.BlogPostFilter) ([]*model.BlogPost, error)
	GetByID(ctx context.Context, id string) (*model.BlogPost, error)
	Create(ctx context.Context, post *model.BlogPost) (string, error)
	Update(ctx context.Context, id string, post *model.BlogPost) (*model.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

type blogPostService struct {
	repo      repository.BlogPostRepository
	validator *validation.Validator
	log       *logger.Logger
}

func NewBlogPostService(repo repository.BlogPostRepository, validator *validation.Validator, log *logger.Logger) BlogPostService {
	return &blogPostService{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

func (s *blogPostService) List(ctx context.Context, filter model.BlogPostFilter) ([]*model.BlogPost, error) {
	posts, err := s.repo.Find(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list blog posts", "error", err)
		return nil, apperrors.Internal("Failed to retrieve blog posts", err)
	}
	return posts, nil
}

func (s *blogPostService) GetByID(ctx context.Context, id string) (*model.BlogPost, error) {
	if !store.IsValidID(id) {
		return nil, apperrors.InvalidID(id)
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err, id, "Failed to retrieve blog post")
	}
	return post, nil
}

func (s *blogPostService) Create(ctx context.Context, post *model.BlogPost) (string, error) {
	applyDefaults(post)

	if err := s.validator.Validate(post); err != nil {
		s.log.Warn("Blog post validation failed", "title", post.Title, "error", err)
		return "", err
	}

	id, err := s.repo.Create(ctx, post)
	if err != nil {
		s.log.Error("Failed to create blog post", "title", post.Title, "error", err)
		return "", s.mapError(err, "", "Failed to create blog post")
	}

	s.log.Info("Blog post created successfully", "id", id, "title", post.Title, "tags", post.Tags)
	return id, nil
}

func (s *blogPostService) Update(ctx context.Context, id string, post *model.BlogPost) (*model.BlogPost, error) {
	if !store.IsValidID(id) {
		return nil, apperrors.InvalidID(id)
	}

	applyDefaults(post)
	if err := s.validator.Validate(post); err != nil {
		s.log.Warn("Blog post validation failed", "id", id, "error", err)
		return nil, err
	}

	matched, err := s.repo.Update(ctx, id, post)
	if err != nil {
		s.log.Error("Failed to update blog post", "id", id, "error", err)
		return nil, s.mapError(err, id, "Failed to update blog post")
	}
	if matched == 0 {
		return nil, apperrors.NotFoundWithID(resourceName, id)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapError(err, id, "Failed to retrieve blog post")
	}

	s.log.Info("Blog post updated successfully", "id", id)
	return updated, nil
}

func (s *blogPostService) Delete(ctx context.Context, id string) error {
	if !store.IsValidID(id) {
		return apperrors.InvalidID(id)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete blog post", "id", id, "error", err)
		return s.mapError(err, id, "Failed to delete blog post")
	}
	if deleted == 0 {
		return apperrors.NotFoundWithID(resourceName, id)
	}

	s.log.Info("Blog post deleted successfully", "id", id)
	return nil
}

func (s *blogPostService) mapError(err error, id, message string) error {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return apperrors.InvalidID(id)
	case errors.Is(err, store.ErrNotFound):
		return apperrors.NotFoundWithID(resourceName, id)
	case errors.Is(err, store.ErrDuplicate):
		return apperrors.Conflict("Post already exists")
	default:
		return apperrors.Internal(message, err)
	}
}

// applyDefaults fills absent fields: posts are published unless told
// otherwise. Submitted values are stored as given.
func applyDefaults(post *model.BlogPost) {
	post.Tags = sanitizer.OrEmpty(post.Tags)

	if post.Published == nil {
		published := true
		post.Published = &published
	}
}
