package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/devconnector/devconnector-api/internal/application"
	"github.com/devconnector/devconnector-api/internal/domain/entity"
	repo "github.com/devconnector/devconnector-api/internal/domain/repository"
	"github.com/devconnector/devconnector-api/internal/infrastructure/github"
	"github.com/devconnector/devconnector-api/internal/interface/middleware"
	"github.com/devconnector/devconnector-api/pkg/helpers"
	"github.com/devconnector/devconnector-api/pkg/validation"
)

// End-to-end router tests: real services and middleware over in-memory
// repositories, exercising the exact wire format the front end consumes.

type memUserRepo struct{ users map[string]entity.User }

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	m.users[u.ID] = *u
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// memProfileRepo mirrors the join the real repository performs: reads carry
// the owner's name/avatar.
type memProfileRepo struct {
	profiles map[string]entity.Profile
	users    *memUserRepo
}

func (m *memProfileRepo) join(p entity.Profile) *entity.Profile {
	cp := p
	cp.User = entity.ProfileUser{ID: p.UserID}
	if u, ok := m.users.users[p.UserID]; ok {
		cp.User.Name = u.Name
		cp.User.Avatar = u.AvatarURL
	}
	return &cp
}

func (m *memProfileRepo) GetByUserID(_ context.Context, userID string) (*entity.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return m.join(p), nil
}

func (m *memProfileRepo) List(_ context.Context) ([]*entity.Profile, error) {
	out := make([]*entity.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		out = append(out, m.join(p))
	}
	return out, nil
}

func (m *memProfileRepo) Insert(_ context.Context, p *entity.Profile) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m.profiles[p.UserID] = *p
	return nil
}

func (m *memProfileRepo) Update(_ context.Context, p *entity.Profile) error {
	if _, ok := m.profiles[p.UserID]; !ok {
		return repo.ErrNotFound
	}
	m.profiles[p.UserID] = *p
	return nil
}

func (m *memProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	if _, ok := m.profiles[userID]; !ok {
		return repo.ErrNotFound
	}
	delete(m.profiles, userID)
	return nil
}

type memPostRepo struct {
	posts map[string]entity.Post
	order []string
}

func (m *memPostRepo) Insert(_ context.Context, p *entity.Post) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m.posts[p.ID] = *p
	m.order = append(m.order, p.ID)
	return nil
}

func (m *memPostRepo) GetByID(_ context.Context, id string) (*entity.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (m *memPostRepo) List(_ context.Context) ([]*entity.Post, error) {
	out := make([]*entity.Post, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		if p, ok := m.posts[m.order[i]]; ok {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memPostRepo) Update(_ context.Context, p *entity.Post) error {
	if _, ok := m.posts[p.ID]; !ok {
		return repo.ErrNotFound
	}
	m.posts[p.ID] = *p
	return nil
}

func (m *memPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.posts[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

type memGithub struct {
	repos []github.Repo
	err   error
}

func (m *memGithub) ListUserRepos(_ context.Context, _ string) ([]github.Repo, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.repos, nil
}

type testEnv struct {
	router   *gin.Engine
	jwt      *helpers.JWTManager
	users    *memUserRepo
	profiles *memProfileRepo
	posts    *memPostRepo
	github   *memGithub
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	users := &memUserRepo{users: map[string]entity.User{}}
	env := &testEnv{
		jwt:      helpers.NewJWTManager("test-secret", time.Hour),
		users:    users,
		profiles: &memProfileRepo{profiles: map[string]entity.Profile{}, users: users},
		posts:    &memPostRepo{posts: map[string]entity.Post{}},
		github:   &memGithub{},
	}

	authSvc := application.NewAuthService(env.users, env.jwt, nil, logger)
	profileSvc := application.NewProfileService(env.profiles, env.users, env.github, logger)
	postSvc := application.NewPostService(env.posts, env.users, logger)

	authH := NewAuthHandler(authSvc, logger)
	profileH := NewProfileHandler(profileSvc, logger)
	postH := NewPostHandler(postSvc, logger)

	r := gin.New()
	api := r.Group("/api")

	api.POST("/users", authH.Register)
	api.POST("/auth", authH.Login)
	api.GET("/profile", profileH.List)
	api.GET("/profile/user/:user_id", profileH.GetByUser)
	api.GET("/profile/github/:username", profileH.GithubRepos)

	auth := api.Group("/")
	auth.Use(middleware.Auth(env.jwt))
	{
		auth.GET("/auth", authH.GetUser)
		auth.GET("/profile/me", profileH.GetMe)
		auth.POST("/profile", profileH.Upsert)
		auth.DELETE("/profile", profileH.DeleteAccount)
		auth.PUT("/profile/experience", profileH.AddExperience)
		auth.DELETE("/profile/experience/:exp_id", profileH.RemoveExperience)
		auth.PUT("/profile/education", profileH.AddEducation)
		auth.DELETE("/profile/education/:edu_id", profileH.RemoveEducation)
		auth.POST("/posts", postH.Create)
		auth.GET("/posts", postH.List)
		auth.GET("/posts/:post_id", postH.Get)
		auth.DELETE("/posts/:post_id", postH.Delete)
		auth.PUT("/posts/like/:post_id", postH.Like)
		auth.PUT("/posts/unlike/:post_id", postH.Unlike)
		auth.POST("/posts/comment/:post_id", postH.AddComment)
		auth.DELETE("/posts/comment/:post_id/:comment_id", postH.DeleteComment)
	}

	env.router = r
	return env
}

// registerUser creates a user through the API and returns its id and token.
func (e *testEnv) registerUser(t *testing.T, name, email string) (string, string) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/users", "", gin.H{
		"name": name, "email": email, "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	claims, err := e.jwt.Parse(body.Token)
	require.NoError(t, err)
	return claims.UserID, body.Token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
