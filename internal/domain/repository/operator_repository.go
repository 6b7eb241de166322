package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/salgaderia-api/internal/domain/entity"
)

// OperatorRepository defines the interface for operator data operations
type OperatorRepository interface {
	Create(ctx context.Context, operator *entity.Operator) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error)
	GetByEmail(ctx context.Context, email string) (*entity.Operator, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}
