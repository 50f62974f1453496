package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/autoblog/internal/common"
	"github.com/dmitrijs2005/autoblog/internal/logging"
	"github.com/dmitrijs2005/autoblog/internal/server/repositories/settings"
)

// CredentialService owns the three publishing secrets: the generation API
// key, the publishing API key, and the publishing target (blog) identifier.
// Values are handed out as copies per call; nothing downstream caches them.
type CredentialService struct {
	settings  settings.Repository
	generator Generator
	logger    logging.Logger
}

// NewCredentialService constructs a CredentialService. The generator is used
// only for the live validation probe when saving a generation key.
func NewCredentialService(s settings.Repository, g Generator, l logging.Logger) *CredentialService {
	return &CredentialService{
		settings:  s,
		generator: g,
		logger:    l.With("module", "credentials"),
	}
}

// GenerationKey returns the stored generation API key, or
// common.ErrMissingCredential if none is set.
func (s *CredentialService) GenerationKey(ctx context.Context) (string, error) {
	return s.get(ctx, common.SettingGenerationAPIKey)
}

// PublishingCredentials returns the stored publishing key and blog ID.
// Both must be present simultaneously; otherwise common.ErrMissingCredential
// is returned.
func (s *CredentialService) PublishingCredentials(ctx context.Context) (apiKey string, blogID string, err error) {
	apiKey, err = s.get(ctx, common.SettingPublishingAPIKey)
	if err != nil {
		return "", "", err
	}
	blogID, err = s.get(ctx, common.SettingBlogID)
	if err != nil {
		return "", "", err
	}
	return apiKey, blogID, nil
}

// SaveGenerationKey validates the key with a live probe against the
// generation endpoint and stores it on success. A failed probe leaves any
// previously stored key untouched.
func (s *CredentialService) SaveGenerationKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: generation API key is empty", common.ErrorValidation)
	}

	if !s.generator.Validate(ctx, key) {
		return fmt.Errorf("%w: generation endpoint rejected the key", common.ErrorValidation)
	}

	if err := s.settings.Set(ctx, common.SettingGenerationAPIKey, key); err != nil {
		return fmt.Errorf("failed to store generation key: %w", err)
	}
	s.logger.Info(ctx, "generation key saved and verified")
	return nil
}

// SavePublishingCredentials stores the publishing key and blog ID. No live
// validation is performed for these; the publish call itself is the check.
func (s *CredentialService) SavePublishingCredentials(ctx context.Context, apiKey, blogID string) error {
	apiKey = strings.TrimSpace(apiKey)
	blogID = strings.TrimSpace(blogID)
	if apiKey == "" || blogID == "" {
		return fmt.Errorf("%w: publishing API key and blog ID are both required", common.ErrorValidation)
	}

	if err := s.settings.Set(ctx, common.SettingPublishingAPIKey, apiKey); err != nil {
		return fmt.Errorf("failed to store publishing key: %w", err)
	}
	if err := s.settings.Set(ctx, common.SettingBlogID, blogID); err != nil {
		return fmt.Errorf("failed to store blog id: %w", err)
	}
	s.logger.Info(ctx, "publishing credentials saved")
	return nil
}

// Configured reports which credential groups are present, for the dashboard.
func (s *CredentialService) Configured(ctx context.Context) (generation bool, publishing bool) {
	if _, err := s.GenerationKey(ctx); err == nil {
		generation = true
	}
	if _, _, err := s.PublishingCredentials(ctx); err == nil {
		publishing = true
	}
	return generation, publishing
}

func (s *CredentialService) get(ctx context.Context, name string) (string, error) {
	value, err := s.settings.Get(ctx, name)
	if errors.Is(err, common.ErrorNotFound) {
		return "", fmt.Errorf("%w: %s", common.ErrMissingCredential, name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	if value == "" {
		return "", fmt.Errorf("%w: %s", common.ErrMissingCredential, name)
	}
	return value, nil
}
