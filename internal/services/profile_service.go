package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/codementor/codementor-api/internal/models"
	"github.com/codementor/codementor-api/internal/store"
	"github.com/codementor/codementor-api/internal/validation"
	apperrors "github.com/codementor/codementor-api/pkg/errors"
	"github.com/codementor/codementor-api/pkg/objectstore"
)

var (
	ErrNoProfile       = apperrors.NotFound("stored profile")
	ErrStorageDisabled = errors.New("avatar storage is not configured")
)

// ProfileService reads and edits the stored user profile, including
// avatar uploads to the object store.
type ProfileService struct {
	store   *store.Store
	objects *objectstore.StorageClient // nil when object storage is disabled
}

// NewProfileService creates the profile service
func NewProfileService(s *store.Store, objects *objectstore.StorageClient) *ProfileService {
	return &ProfileService{store: s, objects: objects}
}

// Get returns the stored profile
func (s *ProfileService) Get(ctx context.Context) (*models.User, error) {
	data, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}
	if data.User == nil {
		return nil, ErrNoProfile
	}
	return data.User, nil
}

// Update applies the provided fields to the stored profile and persists it
func (s *ProfileService) Update(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	if req.Name != "" {
		if err := validation.ValidateName(req.Name); err != nil {
			return nil, err
		}
	}
	if err := validation.WithinLimit("interests", req.Interests, validation.MaxInterestsLength); err != nil {
		return nil, err
	}

	var updated *models.User
	err := s.store.Update(ctx, func(data *store.StoredData) (store.Partial, error) {
		if data.User == nil {
			return store.Partial{}, ErrNoProfile
		}

		if req.Name != "" {
			data.User.Name = req.Name
		}
		if req.Languages != nil {
			data.User.Languages = req.Languages
		}
		if req.Interests != "" {
			data.User.Interests = req.Interests
		}
		if req.Level != "" && req.Level.IsValid() {
			data.User.Level = req.Level
		}

		updated = data.User
		return store.Partial{User: data.User}, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UploadAvatar stores the image and persists its URL on the profile
func (s *ProfileService) UploadAvatar(ctx context.Context, req models.AvatarUploadRequest) (*models.User, error) {
	if s.objects == nil {
		return nil, ErrStorageDisabled
	}

	profile, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "image/png"
	}

	key := fmt.Sprintf("avatars/%s.png", profile.ID)
	url, err := s.objects.UploadImage(ctx, req.ImageData, key, contentType)
	if err != nil {
		return nil, err
	}

	profile.AvatarURL = url
	if err := s.store.Write(ctx, store.Partial{User: profile}); err != nil {
		return nil, err
	}
	return profile, nil
}
