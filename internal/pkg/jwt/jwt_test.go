package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken(7, "operational_admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.EmployeeID)
	assert.Equal(t, "operational_admin", claims.Role)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, err := New("one", time.Hour).GenerateToken(7, "washer")
	require.NoError(t, err)

	_, err = New("two", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := New("test-secret", -time.Minute)
	token, err := svc.GenerateToken(7, "washer")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
