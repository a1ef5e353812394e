package application

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/devconnector/devconnector-api/internal/domain/entity"
	repo "github.com/devconnector/devconnector-api/internal/domain/repository"
	"github.com/devconnector/devconnector-api/internal/infrastructure/github"
)

// In-memory repositories used across the service tests. They copy values on
// the way in and out so tests observe only what was persisted.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]entity.Profile // keyed by user id
	err      error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]entity.Profile{}}
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (f *fakeProfileRepo) List(_ context.Context) ([]*entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		cp := p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProfileRepo) Insert(_ context.Context, p *entity.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	f.profiles[p.UserID] = *p
	return nil
}

func (f *fakeProfileRepo) Update(_ context.Context, p *entity.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.profiles[p.UserID]; !ok {
		return repo.ErrNotFound
	}
	f.profiles[p.UserID] = *p
	return nil
}

func (f *fakeProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.profiles[userID]; !ok {
		return repo.ErrNotFound
	}
	delete(f.profiles, userID)
	return nil
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[string]entity.Post
	order []string // insertion order, newest first on List
	err   error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]entity.Post{}}
}

func (f *fakePostRepo) Insert(_ context.Context, p *entity.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	f.posts[p.ID] = *p
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.posts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (f *fakePostRepo) List(_ context.Context) ([]*entity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Post, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		if p, ok := f.posts[f.order[i]]; ok {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePostRepo) Update(_ context.Context, p *entity.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.posts[p.ID]; !ok {
		return repo.ErrNotFound
	}
	f.posts[p.ID] = *p
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.posts[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

type fakeGithub struct {
	repos []github.Repo
	err   error
	calls int
}

func (f *fakeGithub) ListUserRepos(_ context.Context, _ string) ([]github.Repo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.repos, nil
}

var _ repo.UserRepository = (*fakeUserRepo)(nil)
var _ repo.ProfileRepository = (*fakeProfileRepo)(nil)
var _ repo.PostRepository = (*fakePostRepo)(nil)
var _ GithubGateway = (*fakeGithub)(nil)

func strptr(s string) *string { return &s }
