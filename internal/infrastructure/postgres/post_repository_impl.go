package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/devconnector/devconnector-api/internal/domain/entity"
	"github.com/devconnector/devconnector-api/internal/domain/repository"
)

// PostRepository stores each post as one row with likes and comments as
// JSONB; Update rewrites both together with the row.
type PostRepository struct {
	db DB
}

func NewPostRepository(db DB) *PostRepository {
	return &PostRepository{db: db}
}

const postSelect = `
	SELECT id, user_id, text, name, avatar_url, likes, comments, created_at
	FROM posts
`

func scanPost(row pgx.Row) (*entity.Post, error) {
	p := &entity.Post{}
	if err := row.Scan(&p.ID, &p.UserID, &p.Text, &p.Name, &p.AvatarURL,
		&p.Likes, &p.Comments, &p.CreatedAt); err != nil {
		return nil, err
	}
	if p.Likes == nil {
		p.Likes = []entity.Like{}
	}
	if p.Comments == nil {
		p.Comments = []entity.Comment{}
	}
	return p, nil
}

func (r *PostRepository) Insert(ctx context.Context, p *entity.Post) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO posts (user_id, text, name, avatar_url, likes, comments)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, p.UserID, p.Text, p.Name, p.AvatarURL, p.Likes, p.Comments)

	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	row := r.db.QueryRow(ctx, postSelect+` WHERE id = $1`, id)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) List(ctx context.Context) ([]*entity.Post, error) {
	rows, err := r.db.Query(ctx, postSelect+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*entity.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Update(ctx context.Context, p *entity.Post) error {
	res, err := r.db.Exec(ctx, `
		UPDATE posts
		SET text = $1, likes = $2, comments = $3
		WHERE id = $4
	`, p.Text, p.Likes, p.Comments, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
