package postgres

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialMappers_RoundTrip(t *testing.T) {
	cred := &entity.Credential{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "hashed_password",
	}

	credM := fromCredentialDomain(cred)
	require.NotNil(t, credM)
	assert.Equal(t, entity.ProviderTypeEmail, credM.Provider)
	assert.Equal(t, cred.PasswordHash, credM.PasswordHash)

	credM.CreatedAt = time.Now()
	back := toCredentialDomain(credM)
	require.NotNil(t, back)
	assert.Equal(t, cred.ID, back.ID)
	assert.Equal(t, cred.UserID, back.UserID)
	assert.Equal(t, entity.ProviderTypeEmail, back.Provider)
	assert.Equal(t, cred.PasswordHash, back.PasswordHash)
}

func TestCredentialMappers_Nil(t *testing.T) {
	assert.Nil(t, toCredentialDomain(nil))
	assert.Nil(t, fromCredentialDomain(nil))
}
