package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtsvc "parkwash/internal/pkg/jwt"
	"parkwash/internal/testutil"
)

func setupService(t *testing.T) (*Service, *jwtsvc.Service) {
	t.Helper()
	db := testutil.NewDB(t, &Employee{})
	j := jwtsvc.New("test-secret", time.Hour)
	return NewService(NewRepository(db), j), j
}

func TestCreateAndLogin(t *testing.T) {
	svc, j := setupService(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, CreateEmployeeRequest{
		FullName: "Gate Operator",
		Username: "Gate1",
		Password: "secret123",
		Role:     "operational_admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "gate1", e.Username)
	assert.NotEqual(t, "secret123", e.PasswordHash)

	resp, err := svc.Login(ctx, LoginRequest{Username: "gate1", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)

	claims, err := j.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, e.ID, claims.EmployeeID)
	assert.Equal(t, "operational_admin", claims.Role)

	_, err = svc.Login(ctx, LoginRequest{Username: "gate1", Password: "wrong"})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestCreateRejectsDuplicateUsernameAndBadRole(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateEmployeeRequest{FullName: "A", Username: "dup", Password: "secret123", Role: "washer"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateEmployeeRequest{FullName: "B", Username: "DUP", Password: "secret123", Role: "washer"})
	assert.True(t, errors.Is(err, ErrUsernameTaken), "got %v", err)

	_, err = svc.Create(ctx, CreateEmployeeRequest{FullName: "C", Username: "other", Password: "secret123", Role: "cashier"})
	assert.True(t, errors.Is(err, ErrInvalidRole))
}

func TestInactiveEmployeeCannotLogin(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, CreateEmployeeRequest{FullName: "Old", Username: "old", Password: "secret123", Role: "washer"})
	require.NoError(t, err)
	require.NoError(t, svc.SetActive(ctx, e.ID, false))

	_, err = svc.Login(ctx, LoginRequest{Username: "old", Password: "secret123"})
	assert.True(t, errors.Is(err, ErrInactive))
}

func TestValidateWasher(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	washer, err := svc.Create(ctx, CreateEmployeeRequest{FullName: "W", Username: "washer1", Password: "secret123", Role: "washer"})
	require.NoError(t, err)
	operator, err := svc.Create(ctx, CreateEmployeeRequest{FullName: "O", Username: "op1", Password: "secret123", Role: "operational_admin"})
	require.NoError(t, err)

	got, err := svc.ValidateWasher(ctx, washer.ID)
	require.NoError(t, err)
	assert.Equal(t, washer.ID, got.ID)

	_, err = svc.ValidateWasher(ctx, operator.ID)
	assert.True(t, errors.Is(err, ErrInvalidWasher))

	_, err = svc.ValidateWasher(ctx, 9999)
	assert.True(t, errors.Is(err, ErrInvalidWasher))

	require.NoError(t, svc.SetActive(ctx, washer.ID, false))
	_, err = svc.ValidateWasher(ctx, washer.ID)
	assert.True(t, errors.Is(err, ErrInvalidWasher))
}
