package idea

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"idea-eval/backend/internal/ai"
	"idea-eval/backend/internal/util"
)

// ErrIdeaRequired is returned when a validation is requested without idea text.
var ErrIdeaRequired = errors.New("idea is required")

// Result is a Validation plus how it was produced.
type Result struct {
	Validation Validation
	// Fallback is set when the model reply could not be parsed and a fixed
	// default assessment was substituted.
	Fallback  bool
	Model     string
	ElapsedMs int64
}

// Service forwards idea requests to the upstream model.
type Service struct {
	completer ai.Completer
}

// NewService wraps the completer. A nil completer yields a service whose
// operations fail with ai.ErrDisabled.
func NewService(completer ai.Completer) *Service {
	return &Service{completer: completer}
}

// Enabled reports whether upstream calls can be made.
func (s *Service) Enabled() bool {
	return s != nil && s.completer != nil && s.completer.Enabled()
}

// Model names the upstream provider and model, or "" when disabled.
func (s *Service) Model() string {
	if !s.Enabled() {
		return ""
	}
	return s.completer.Name()
}

// Generate asks the model for a new idea in the given category. An empty
// category, or the random category, lets the model choose.
func (s *Service) Generate(ctx context.Context, category string) (Result, error) {
	category = strings.TrimSpace(category)
	if strings.EqualFold(category, RandomCategory) {
		category = ""
	}

	raw, result, err := s.complete(ctx, "generate", generateRequest(category))
	if err != nil {
		return Result{}, err
	}

	validation, err := parseValidation(raw)
	if err != nil {
		logrus.WithError(err).WithField("category", category).Warn("generated idea reply unparsable; using fallback")
		result.Validation = fallbackGenerated(raw, category)
		result.Fallback = true
		return result, nil
	}
	fill := category
	if fill == "" {
		fill = DefaultCategory
	}
	validation.sanitize("", fill)
	result.Validation = validation
	return result, nil
}

// Validate asks the model to score a user-submitted idea. A blank category
// is treated as GeneralCategory.
func (s *Service) Validate(ctx context.Context, ideaText, category string) (Result, error) {
	ideaText = strings.TrimSpace(ideaText)
	if ideaText == "" {
		return Result{}, ErrIdeaRequired
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = GeneralCategory
	}

	raw, result, err := s.complete(ctx, "validate", validateRequest(ideaText, category))
	if err != nil {
		return Result{}, err
	}

	validation, err := parseValidation(raw)
	if err != nil {
		logrus.WithError(err).WithField("category", category).Warn("validation reply unparsable; using fallback")
		result.Validation = fallbackValidation(ideaText, category)
		result.Fallback = true
		return result, nil
	}
	validation.sanitize(ideaText, category)
	result.Validation = validation
	return result, nil
}

func (s *Service) complete(ctx context.Context, op string, req ai.Request) (string, Result, error) {
	if !s.Enabled() {
		return "", Result{}, ai.ErrDisabled
	}

	timer := util.StartTimer()
	raw, err := s.completer.Complete(ctx, req)
	result := Result{Model: s.completer.Name(), ElapsedMs: timer.ElapsedMs()}

	entry := logrus.WithFields(logrus.Fields{
		"op":         op,
		"model":      result.Model,
		"elapsed_ms": result.ElapsedMs,
	})
	if err != nil {
		entry.WithError(err).Error("upstream completion failed")
		return "", Result{}, err
	}
	entry.Debug("upstream completion received")
	return raw, result, nil
}
