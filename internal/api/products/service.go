package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"product-studio/internal/domain/plans"
	"product-studio/internal/domain/products"
	"product-studio/internal/generation"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Generator produces raw marketing copy for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Failure tags the handler collapses into user-facing messages. The upstream
// cause stays wrapped for logging, never for display.
var (
	ErrGenerationFailed = errors.New("generation failed")
	ErrParseFailed      = errors.New("generation response unusable")
)

// CreateInput carries one creation request.
type CreateInput struct {
	Origin products.Origin
	Text   string
}

// Service runs the end-to-end product creation flow and owns its failure
// semantics. Store and Generator are injected; there is no ambient state.
type Service struct {
	store     Store
	generator Generator
	logger    zerolog.Logger
}

func NewService(store Store, generator Generator, logger zerolog.Logger) *Service {
	return &Service{store: store, generator: generator, logger: logger}
}

// Create validates the request, checks quota, generates and parses content,
// then persists the product. The quota pre-check keeps over-cap users from
// burning a generation call; the store re-checks the cap inside the insert
// transaction, so a concurrent creation can still lose there.
func (s *Service) Create(ctx context.Context, email string, in CreateInput) (uint, error) {
	if in.Origin != products.OriginNiche && in.Origin != products.OriginIdea {
		return 0, products.ErrInvalidInput
	}
	if strings.TrimSpace(in.Text) == "" {
		return 0, products.ErrInvalidInput
	}

	owner, err := s.store.GetUserPlanAndCount(ctx, email)
	if err != nil {
		return 0, err
	}

	if !plans.CanCreate(owner.Plan, owner.Count) {
		return 0, products.ErrQuotaExceeded
	}

	prompt, err := generation.BuildPrompt(in.Origin, in.Text)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", products.ErrInvalidInput, err)
	}

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("generation call failed")
		return 0, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	content, err := generation.ParseResponse(raw)
	if err != nil {
		var malformed *generation.MalformedResponseError
		if errors.As(err, &malformed) {
			s.logger.Error().Str("email", email).Str("raw", malformed.Raw).Msg("generation response did not parse")
		}
		return 0, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	cover := fmt.Sprintf("/placeholders/cover-%d-%s.png", owner.UserID, uuid.NewString())
	adCreative := fmt.Sprintf("/placeholders/ad-%d-%s.png", owner.UserID, uuid.NewString())

	id, err := s.store.CreateProduct(ctx, owner, in.Origin, in.Text, content, cover, adCreative)
	if err != nil {
		if !errors.Is(err, products.ErrQuotaExceeded) {
			s.logger.Error().Err(err).Str("email", email).Msg("failed to persist product")
		}
		return 0, err
	}

	s.logger.Info().Uint("product_id", id).Str("email", email).Str("origin", string(in.Origin)).Msg("product created")
	return id, nil
}

func (s *Service) List(ctx context.Context, email string) ([]Summary, error) {
	return s.store.ListProducts(ctx, email)
}

func (s *Service) Get(ctx context.Context, id uint, email string) (*products.Product, error) {
	return s.store.GetProduct(ctx, id, email)
}

func (s *Service) Delete(ctx context.Context, id uint, email string) error {
	return s.store.DeleteProduct(ctx, id, email)
}
