package repository

import (
	"context"

	"github.com/devconnector/devconnector-api/internal/domain/entity"
)

// PostRepository persists Post aggregates. Update rewrites likes and
// comments together with the post row (whole-aggregate read-modify-write,
// no version token).
type PostRepository interface {
	Insert(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	List(ctx context.Context) ([]*entity.Post, error)
	Update(ctx context.Context, p *entity.Post) error
	Delete(ctx context.Context, id string) error
}
