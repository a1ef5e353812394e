package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnector/devconnector-api/internal/domain/entity"
	"github.com/devconnector/devconnector-api/internal/domain/repository"
)

const (
	profileID = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	ownerID   = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
)

func profileColumns() []string {
	return []string{"id", "user_id", "name", "avatar_url",
		"company", "website", "location", "bio", "status", "github_username",
		"skills", "social", "experience", "education", "created_at"}
}

func TestProfileRepository_GetByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC().Truncate(time.Microsecond)
	exp := []entity.Experience{{ID: "e1", Title: "Engineer", Company: "Acme", From: "2020"}}
	mock.ExpectQuery("SELECT p.id, p.user_id, u.name, u.avatar_url").
		WithArgs(ownerID).
		WillReturnRows(pgxmock.NewRows(profileColumns()).
			AddRow(profileID, ownerID, "Alice", "https://gravatar.com/avatar/x",
				"Acme", "", "Berlin", "", "Developer", "alice",
				[]string{"Go", "SQL"}, entity.Social{Twitter: "https://twitter.com/alice"},
				exp, []entity.Education{}, now))

	repo := NewProfileRepository(mock)
	p, err := repo.GetByUserID(context.Background(), ownerID)

	require.NoError(t, err)
	assert.Equal(t, profileID, p.ID)
	assert.Equal(t, ownerID, p.User.ID, "owner id is copied onto the joined user")
	assert.Equal(t, "Alice", p.User.Name)
	assert.Equal(t, []string{"Go", "SQL"}, p.Skills)
	assert.Equal(t, "https://twitter.com/alice", p.Social.Twitter)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Engineer", p.Experience[0].Title)
	assert.NotNil(t, p.Education)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_GetByUserID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT p.id, p.user_id, u.name, u.avatar_url").
		WithArgs(ownerID).
		WillReturnError(pgx.ErrNoRows)

	repo := NewProfileRepository(mock)
	p, err := repo.GetByUserID(context.Background(), ownerID)

	require.Nil(t, p)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_NilSequencesBecomeEmpty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC().Truncate(time.Microsecond)
	mock.ExpectQuery("SELECT p.id, p.user_id, u.name, u.avatar_url").
		WithArgs(ownerID).
		WillReturnRows(pgxmock.NewRows(profileColumns()).
			AddRow(profileID, ownerID, "Alice", "",
				"", "", "", "", "Developer", "",
				[]string(nil), entity.Social{}, []entity.Experience(nil), []entity.Education(nil), now))

	repo := NewProfileRepository(mock)
	p, err := repo.GetByUserID(context.Background(), ownerID)

	require.NoError(t, err)
	assert.NotNil(t, p.Skills)
	assert.NotNil(t, p.Experience)
	assert.NotNil(t, p.Education)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := &entity.Profile{
		UserID:     ownerID,
		Status:     "Developer",
		Skills:     []string{"Go"},
		Experience: []entity.Experience{},
		Education:  []entity.Education{},
	}
	mock.ExpectQuery("INSERT INTO profiles").
		WithArgs(ownerID, "", "", "", "", "Developer", "",
			p.Skills, p.Social, p.Experience, p.Education).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(profileID, now))

	repo := NewProfileRepository(mock)
	require.NoError(t, repo.Insert(context.Background(), p))
	assert.Equal(t, profileID, p.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_Update_Missing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	p := &entity.Profile{UserID: ownerID, Status: "Developer", Skills: []string{}, Experience: []entity.Experience{}, Education: []entity.Education{}}
	mock.ExpectExec("UPDATE profiles").
		WithArgs("", "", "", "", "Developer", "", p.Skills, p.Social, p.Experience, p.Education, ownerID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewProfileRepository(mock)
	err = repo.Update(context.Background(), p)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_DeleteByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM profiles").
		WithArgs(ownerID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := NewProfileRepository(mock)
	require.NoError(t, repo.DeleteByUserID(context.Background(), ownerID))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rows := pgxmock.NewRows(profileColumns()).
		AddRow(profileID, ownerID, "Alice", "",
			"", "", "", "", "Developer", "",
			[]string{"Go"}, entity.Social{}, []entity.Experience{}, []entity.Education{}, now).
		AddRow("cccccccc-cccc-cccc-cccc-cccccccccccc", "dddddddd-dddd-dddd-dddd-dddddddddddd", "Bob", "",
			"", "", "", "", "Student", "",
			[]string{"JS"}, entity.Social{}, []entity.Experience{}, []entity.Education{}, now)
	mock.ExpectQuery("SELECT p.id, p.user_id, u.name, u.avatar_url").WillReturnRows(rows)

	repo := NewProfileRepository(mock)
	profiles, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Alice", profiles[0].User.Name)
	assert.Equal(t, "Bob", profiles[1].User.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
