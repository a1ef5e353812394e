package application

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devconnector/devconnector-api/internal/domain/entity"
	repo "github.com/devconnector/devconnector-api/internal/domain/repository"
	"github.com/devconnector/devconnector-api/internal/infrastructure/github"
)

// GithubGateway lists public repositories for a GitHub username.
type GithubGateway interface {
	ListUserRepos(ctx context.Context, username string) ([]github.Repo, error)
}

// ProfileService owns the one-profile-per-user aggregate, including the
// embedded experience and education sequences.
type ProfileService struct {
	Profiles repo.ProfileRepository
	Users    repo.UserRepository
	Github   GithubGateway
	Logger   *logrus.Logger
}

func NewProfileService(profiles repo.ProfileRepository, users repo.UserRepository, gh GithubGateway, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Profiles: profiles, Users: users, Github: gh, Logger: logger}
}

// ProfileInput is a sparse patch: nil pointers leave the stored value
// untouched, non-nil pointers set it. Status and Skills are required on
// every upsert. Intent is never inferred from empty strings.
type ProfileInput struct {
	Status string
	Skills string // comma-delimited, normalized by NormalizeSkills

	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string

	Youtube   *string
	Facebook  *string
	Twitter   *string
	Instagram *string
	Linkedin  *string
}

// NormalizeSkills splits a comma-delimited skills string into a trimmed
// ordered slice, dropping empty entries.
func NormalizeSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func applyPatch(p *entity.Profile, in ProfileInput) {
	p.Status = in.Status
	p.Skills = NormalizeSkills(in.Skills)

	if in.Company != nil {
		p.Company = *in.Company
	}
	if in.Website != nil {
		p.Website = *in.Website
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.Bio != nil {
		p.Bio = *in.Bio
	}
	if in.GithubUsername != nil {
		p.GithubUsername = *in.GithubUsername
	}

	if in.Youtube != nil {
		p.Social.Youtube = *in.Youtube
	}
	if in.Facebook != nil {
		p.Social.Facebook = *in.Facebook
	}
	if in.Twitter != nil {
		p.Social.Twitter = *in.Twitter
	}
	if in.Instagram != nil {
		p.Social.Instagram = *in.Instagram
	}
	if in.Linkedin != nil {
		p.Social.Linkedin = *in.Linkedin
	}
}

// GetOwn looks up the caller's profile. ErrProfileNotFound is an expected
// outcome for authenticated users who have not created one yet.
func (s *ProfileService) GetOwn(ctx context.Context, userID string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// GetByUser is the public profile lookup keyed by an arbitrary user id.
// A malformed id behaves like a missing profile, matching the original API.
func (s *ProfileService) GetByUser(ctx context.Context, userID string) (*entity.Profile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrProfileNotFound
	}
	return s.GetOwn(ctx, userID)
}

// List returns all profiles, each joined with its owner's name/avatar.
func (s *ProfileService) List(ctx context.Context) ([]*entity.Profile, error) {
	return s.Profiles.List(ctx)
}

// Upsert applies the sparse patch to an existing profile, or creates a new
// one from it. The exists-check and the write are two separate statements:
// two concurrent upserts for the same new user can race (last write wins),
// which is the accepted behavior of this API.
func (s *ProfileService) Upsert(ctx context.Context, userID string, in ProfileInput) (*entity.Profile, error) {
	existing, err := s.Profiles.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		applyPatch(existing, in)
		if err := s.Profiles.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	p := &entity.Profile{
		UserID:     userID,
		Skills:     []string{},
		Experience: []entity.Experience{},
		Education:  []entity.Education{},
	}
	applyPatch(p, in)
	if err := s.Profiles.Insert(ctx, p); err != nil {
		return nil, err
	}
	// Re-read to join in the owner's name/avatar.
	return s.GetOwn(ctx, userID)
}

// DeleteAccount removes the profile and the user record. The user's posts
// are intentionally left in place: a known gap carried over from the
// original API, not silently fixed.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.Profiles.DeleteByUserID(ctx, userID); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	if err := s.Users.Delete(ctx, userID); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	return nil
}

// ExperienceInput carries a new experience entry; required fields are
// enforced at the HTTP boundary.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// AddExperience prepends a new entry (newest first) and persists the whole
// profile aggregate.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, in ExperienceInput) (*entity.Profile, error) {
	p, err := s.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}
	exp := entity.Experience{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	p.Experience = append([]entity.Experience{exp}, p.Experience...)
	if err := s.Profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveExperience filters out the entry with the given id. No match is a
// no-op, not an error; the aggregate is persisted either way.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID string) (*entity.Profile, error) {
	p, err := s.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := p.Experience[:0]
	for _, e := range p.Experience {
		if e.ID != expID {
			kept = append(kept, e)
		}
	}
	p.Experience = kept
	if err := s.Profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// EducationInput carries a new education entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// AddEducation mirrors AddExperience over the education sequence.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, in EducationInput) (*entity.Profile, error) {
	p, err := s.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}
	edu := entity.Education{
		ID:           uuid.NewString(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	p.Education = append([]entity.Education{edu}, p.Education...)
	if err := s.Profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveEducation mirrors RemoveExperience.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID string) (*entity.Profile, error) {
	p, err := s.GetOwn(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := p.Education[:0]
	for _, e := range p.Education {
		if e.ID != eduID {
			kept = append(kept, e)
		}
	}
	p.Education = kept
	if err := s.Profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GithubRepos proxies the repo listing for a GitHub username. Upstream
// non-success responses surface as github.ErrNoGithubProfile; transport
// failures propagate as internal errors.
func (s *ProfileService) GithubRepos(ctx context.Context, username string) ([]github.Repo, error) {
	return s.Github.ListUserRepos(ctx, username)
}
