package services

import (
	"context"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"github.com/lucasmb/orkinet/internal/app/models/dto"
	"github.com/lucasmb/orkinet/internal/pkg/apperrors"
	"github.com/lucasmb/orkinet/internal/pkg/validation"
)

// ProfileService defines the interface for profile operations
type ProfileService interface {
	GetProfile(ctx context.Context, id string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, sessionUserID, targetID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

// profileServiceImpl implements ProfileService
type profileServiceImpl struct {
	profileStore ProfileStore
	sanitizer    *bluemonday.Policy
	logger       zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileStore ProfileStore, logger zerolog.Logger) ProfileService {
	return &profileServiceImpl{
		profileStore: profileStore,
		sanitizer:    bluemonday.StrictPolicy(),
		logger:       logger,
	}
}

// GetProfile retrieves a profile by ID
func (s *profileServiceImpl) GetProfile(ctx context.Context, id string) (*dto.ProfileResponse, error) {
	profile, err := s.profileStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToProfileResponse(profile), nil
}

// UpdateProfile applies a partial update. Only the profile owner may
// edit it; free-text fields are stripped of markup before persisting.
func (s *profileServiceImpl) UpdateProfile(ctx context.Context, sessionUserID, targetID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if sessionUserID != targetID {
		return nil, apperrors.NewForbiddenError("you can only edit your own profile")
	}

	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if !validation.NewStringValidation(name).
			WithMinLength(validation.NameMinLength).
			WithMaxLength(validation.NameMaxLength).
			Validate() {
			return nil, apperrors.NewBadRequestError("display name must be between 2 and 80 characters")
		}
		updates["display_name"] = name
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}
	if req.Bio != nil {
		updates["bio"] = s.sanitizer.Sanitize(*req.Bio)
	}
	if req.BirthDate != nil {
		updates["birth_date"] = *req.BirthDate
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Relationship != nil {
		updates["relationship"] = *req.Relationship
	}
	if req.Country != nil {
		updates["country"] = s.sanitizer.Sanitize(*req.Country)
	}

	if len(updates) > 0 {
		if err := s.profileStore.UpdateFields(ctx, targetID, updates); err != nil {
			return nil, err
		}
		s.logger.Debug().Str("profileID", targetID).Int("fields", len(updates)).Msg("Profile updated")
	}

	return s.GetProfile(ctx, targetID)
}
