package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/lucasmb/orkinet/internal/app/models/dto"
	"github.com/lucasmb/orkinet/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestGetProfileReturnsProfile(t *testing.T) {
	store := newStubProfileStore(newProfile("u1", "Maria Silva"))
	svc := NewProfileService(store, zerolog.Nop())

	resp, err := svc.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.ID)
	assert.Equal(t, "Maria Silva", resp.DisplayName)
}

func TestGetProfileUnknownIDFails(t *testing.T) {
	store := newStubProfileStore()
	svc := NewProfileService(store, zerolog.Nop())

	_, err := svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestUpdateProfileIsOwnerOnly(t *testing.T) {
	store := newStubProfileStore(newProfile("u1", "Maria Silva"))
	svc := NewProfileService(store, zerolog.Nop())

	_, err := svc.UpdateProfile(context.Background(), "u2", "u1", &dto.UpdateProfileRequest{
		Bio: strPtr("hello"),
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestUpdateProfileAppliesPartialUpdate(t *testing.T) {
	store := newStubProfileStore(newProfile("u1", "Maria Silva"))
	svc := NewProfileService(store, zerolog.Nop())

	resp, err := svc.UpdateProfile(context.Background(), "u1", "u1", &dto.UpdateProfileRequest{
		DisplayName: strPtr("  Maria S.  "),
		Bio:         strPtr("Music and movies"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria S.", resp.DisplayName)
	require.NotNil(t, resp.Bio)
	assert.Equal(t, "Music and movies", *resp.Bio)
}

func TestUpdateProfileStripsMarkupFromFreeText(t *testing.T) {
	store := newStubProfileStore(newProfile("u1", "Maria Silva"))
	svc := NewProfileService(store, zerolog.Nop())

	resp, err := svc.UpdateProfile(context.Background(), "u1", "u1", &dto.UpdateProfileRequest{
		Bio:     strPtr(`hello <script>alert("x")</script><b>world</b>`),
		Country: strPtr(`<i>Brasil</i>`),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Bio)
	require.NotNil(t, resp.Country)
	assert.Equal(t, "hello world", *resp.Bio)
	assert.Equal(t, "Brasil", *resp.Country)
}

func TestUpdateProfileRejectsBadDisplayName(t *testing.T) {
	store := newStubProfileStore(newProfile("u1", "Maria Silva"))
	svc := NewProfileService(store, zerolog.Nop())

	_, err := svc.UpdateProfile(context.Background(), "u1", "u1", &dto.UpdateProfileRequest{
		DisplayName: strPtr(" "),
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdateProfileWithNoFieldsIsNoOp(t *testing.T) {
	store := newStubProfileStore(newProfile("u1", "Maria Silva"))
	svc := NewProfileService(store, zerolog.Nop())

	resp, err := svc.UpdateProfile(context.Background(), "u1", "u1", &dto.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", resp.DisplayName)
}
