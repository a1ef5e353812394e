package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/devconnector/devconnector-api/internal/domain/entity"
	"github.com/devconnector/devconnector-api/internal/domain/repository"
)

// ProfileRepository stores each profile as one row: scalar columns plus
// JSONB for social/experience/education. Writes rewrite the whole aggregate.
type ProfileRepository struct {
	db DB
}

func NewProfileRepository(db DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileSelect = `
	SELECT p.id, p.user_id, u.name, u.avatar_url,
	       p.company, p.website, p.location, p.bio, p.status, p.github_username,
	       p.skills, p.social, p.experience, p.education, p.created_at
	FROM profiles p
	JOIN users u ON u.id = p.user_id
`

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	p := &entity.Profile{}
	if err := row.Scan(&p.ID, &p.UserID, &p.User.Name, &p.User.Avatar,
		&p.Company, &p.Website, &p.Location, &p.Bio, &p.Status, &p.GithubUsername,
		&p.Skills, &p.Social, &p.Experience, &p.Education, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.User.ID = p.UserID
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []entity.Experience{}
	}
	if p.Education == nil {
		p.Education = []entity.Education{}
	}
	return p, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	row := r.db.QueryRow(ctx, profileSelect+` WHERE p.user_id = $1`, userID)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	rows, err := r.db.Query(ctx, profileSelect+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]*entity.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepository) Insert(ctx context.Context, p *entity.Profile) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO profiles (user_id, company, website, location, bio, status, github_username,
		                      skills, social, experience, education)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`, p.UserID, p.Company, p.Website, p.Location, p.Bio, p.Status, p.GithubUsername,
		p.Skills, p.Social, p.Experience, p.Education)

	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *ProfileRepository) Update(ctx context.Context, p *entity.Profile) error {
	res, err := r.db.Exec(ctx, `
		UPDATE profiles
		SET company = $1, website = $2, location = $3, bio = $4, status = $5,
		    github_username = $6, skills = $7, social = $8, experience = $9, education = $10
		WHERE user_id = $11
	`, p.Company, p.Website, p.Location, p.Bio, p.Status,
		p.GithubUsername, p.Skills, p.Social, p.Experience, p.Education, p.UserID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
