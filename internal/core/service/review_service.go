package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ourstore/storefront-api/internal/core/domain"
	"github.com/ourstore/storefront-api/internal/core/ports"
)

// maxCommentLength bounds the trimmed comment body.
const maxCommentLength = 500

// ReviewService validates submissions and drives the review store.
type ReviewService struct {
	repo     ports.ReviewRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, logger zerolog.Logger) *ReviewService {
	v := validator.New()

	// notblank: present but whitespace-only values are rejected separately
	// from absent ones, so each case gets its own message.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// trimmax: length limit applied after trimming, matching what is stored.
	_ = v.RegisterValidation("trimmax", func(fl validator.FieldLevel) bool {
		return len(strings.TrimSpace(fl.Field().String())) <= maxCommentLength
	})

	return &ReviewService{repo: repo, validate: v, logger: logger}
}

// reviewCandidate carries the validation rules. Tags run in order per field,
// so each field reports its first violated rule; fields are checked
// independently, so all violations surface in one pass.
type reviewCandidate struct {
	Rating    int    `validate:"required,min=1,max=5"`
	ProductID string `validate:"required"`
	UserName  string `validate:"required,notblank"`
	Comment   string `validate:"required,notblank,trimmax"`
}

// Submit validates the candidate in full, then assigns a random ID and the
// creation timestamp and appends the review to the store. UserName and
// Comment are stored trimmed.
func (s *ReviewService) Submit(ctx context.Context, in ports.ReviewCandidate) (*domain.Review, error) {
	cand := reviewCandidate{
		Rating:    in.Rating,
		ProductID: in.ProductID,
		UserName:  in.UserName,
		Comment:   in.Comment,
	}

	if err := s.validate.Struct(cand); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return nil, err
		}
		details := make([]string, 0, len(ve))
		for _, fe := range ve {
			details = append(details, ruleMessage(fe))
		}
		return nil, &domain.ValidationError{Details: details}
	}

	review := &domain.Review{
		ID:        uuid.NewString(),
		ProductID: in.ProductID,
		UserName:  strings.TrimSpace(in.UserName),
		Comment:   strings.TrimSpace(in.Comment),
		Rating:    in.Rating,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, review); err != nil {
		s.logger.Error().Err(err).Str("product_id", review.ProductID).Msg("failed to store review")
		return nil, err
	}

	s.logger.Info().
		Str("review_id", review.ID).
		Str("product_id", review.ProductID).
		Int("rating", review.Rating).
		Msg("review stored")

	return review, nil
}

// List returns reviews newest first, optionally filtered by product.
func (s *ReviewService) List(ctx context.Context, productID string) ([]domain.Review, error) {
	return s.repo.List(ctx, productID)
}

// ruleMessage converts a single field error into the user-facing message for
// that rule. The wording is part of the API contract.
func ruleMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Rating":
		if fe.Tag() == "required" {
			return "Rating is required"
		}
		return "Rating must be between 1 and 5"
	case "ProductID":
		return "Product ID is required"
	case "UserName":
		if fe.Tag() == "required" {
			return "User name is required"
		}
		return "User name cannot be empty"
	case "Comment":
		switch fe.Tag() {
		case "required":
			return "Comment is required"
		case "notblank":
			return "Comment cannot be empty"
		default:
			return "Comment cannot exceed 500 characters"
		}
	default:
		return strings.ToLower(fe.StructField()) + " is invalid"
	}
}
