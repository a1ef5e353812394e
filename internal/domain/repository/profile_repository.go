package repository

import (
	"context"

	"github.com/devconnector/devconnector-api/internal/domain/entity"
)

// ProfileRepository persists Profile aggregates. Reads join in the owner's
// name/avatar; writes always rewrite the whole aggregate, embedded
// sequences included.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	List(ctx context.Context) ([]*entity.Profile, error)
	Insert(ctx context.Context, p *entity.Profile) error
	Update(ctx context.Context, p *entity.Profile) error
	DeleteByUserID(ctx context.Context, userID string) error
}
