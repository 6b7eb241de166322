package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/salgaderia-api/internal/domain/entity"
	"github.com/sangkips/salgaderia-api/internal/domain/repository"
	"github.com/sangkips/salgaderia-api/internal/logging"
	"github.com/sangkips/salgaderia-api/pkg/apperror"
	"github.com/sangkips/salgaderia-api/pkg/utils"
)

// AuthService handles operator authentication
type AuthService struct {
	operatorRepo repository.OperatorRepository
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(operatorRepo repository.OperatorRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		operatorRepo: operatorRepo,
		jwtManager:   jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Operator    *entity.Operator
	AccessToken string
	ExpiresAt   time.Time
}

// Login authenticates an operator and returns an access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	operator, err := s.operatorRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if operator == nil || !utils.CheckPasswordHash(input.Password, operator.Password) {
		return nil, apperror.ErrInvalidCredentials
	}
	if !operator.Active {
		return nil, apperror.ErrInactiveOperator
	}

	token, err := s.jwtManager.GenerateAccessToken(operator.ID, operator.Name, operator.Email)
	if err != nil {
		return nil, err
	}

	if err := s.operatorRepo.UpdateLastLogin(ctx, operator.ID); err != nil {
		log := logging.Get("auth")
		log.Warn().Err(err).Str("operator_id", operator.ID.String()).Msg("Failed to record last login")
	}

	return &LoginOutput{
		Operator:    operator,
		AccessToken: token,
		ExpiresAt:   time.Now().Add(s.jwtManager.Expiry()),
	}, nil
}

// Profile returns the logged-in operator
func (s *AuthService) Profile(ctx context.Context, operatorID uuid.UUID) (*entity.Operator, error) {
	operator, err := s.operatorRepo.GetByID(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	if operator == nil {
		return nil, apperror.NewNotFoundError("Operator")
	}
	return operator, nil
}
