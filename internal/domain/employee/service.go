package employee

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"parkwash/internal/database"
	jwtsvc "parkwash/internal/pkg/jwt"
	"parkwash/internal/pkg/validator"
)

type Service struct {
	repo Repository
	jwt  *jwtsvc.Service
}

func NewService(repo Repository, jwt *jwtsvc.Service) *Service {
	return &Service{repo: repo, jwt: jwt}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	e, err := s.repo.GetByUsername(ctx, strings.ToLower(strings.TrimSpace(req.Username)))
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !e.IsActive {
		return nil, ErrInactive
	}

	token, err := s.jwt.GenerateToken(e.ID, string(e.Role))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwt.TTL().Seconds()),
		Employee:    e,
	}, nil
}

func (s *Service) Create(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	if err := validator.Check(req); err != nil {
		return nil, err
	}
	role := Role(strings.ToLower(strings.TrimSpace(req.Role)))
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	e := &Employee{
		FullName:     strings.TrimSpace(req.FullName),
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		PasswordHash: string(hash),
		Role:         role,
		Phone:        strings.TrimSpace(req.Phone),
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Employee, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrNotFound
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, role string) ([]Employee, error) {
	r := Role(strings.ToLower(strings.TrimSpace(role)))
	if r != "" && !r.Valid() {
		return nil, ErrInvalidRole
	}
	return s.repo.List(ctx, r)
}

func (s *Service) SetActive(ctx context.Context, id int64, active bool) error {
	return s.repo.SetActive(ctx, id, active)
}

// ValidateWasher returns the employee behind washerID when it can take a
// washing job.
func (s *Service) ValidateWasher(ctx context.Context, washerID int64) (*Employee, error) {
	e, err := s.repo.GetByID(ctx, washerID)
	if err != nil {
		return nil, err
	}
	if e == nil || !e.IsActive || !e.IsWasher() {
		return nil, ErrInvalidWasher
	}
	return e, nil
}

