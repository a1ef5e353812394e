package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devconnector/devconnector-api/internal/domain/entity"
	repo "github.com/devconnector/devconnector-api/internal/domain/repository"
)

// PostService owns the Post aggregate and its embedded likes and comments.
// Every mutation is a whole-aggregate read-modify-write with no version
// token: concurrent writers to the same post race and the last write wins.
type PostService struct {
	Posts  repo.PostRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Users: users, Logger: logger}
}

// Create snapshots the author's current name/avatar into the new post.
// The snapshot is not kept in sync with later profile edits.
func (s *PostService) Create(ctx context.Context, userID, text string) (*entity.Post, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := &entity.Post{
		Text:      text,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		UserID:    userID,
		Likes:     []entity.Like{},
		Comments:  []entity.Comment{},
	}
	if err := s.Posts.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all posts, newest first.
func (s *PostService) List(ctx context.Context) ([]*entity.Post, error) {
	return s.Posts.List(ctx)
}

// Get returns a single post. A malformed id behaves like a missing post.
func (s *PostService) Get(ctx context.Context, postID string) (*entity.Post, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return nil, ErrPostNotFound
	}
	p, err := s.Posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete removes a post; only its author may do so.
func (s *PostService) Delete(ctx context.Context, postID, requesterID string) error {
	p, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if p.UserID != requesterID {
		return ErrNotAuthorized
	}
	return s.Posts.Delete(ctx, postID)
}

// Like prepends a like for userID unless one already exists.
func (s *PostService) Like(ctx context.Context, postID, userID string) ([]entity.Like, error) {
	p, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	for _, l := range p.Likes {
		if l.User == userID {
			return nil, ErrAlreadyLiked
		}
	}
	p.Likes = append([]entity.Like{{User: userID}}, p.Likes...)
	if err := s.Posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// Unlike removes the first like matching userID, erroring when none exists.
func (s *PostService) Unlike(ctx context.Context, postID, userID string) ([]entity.Like, error) {
	p, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, l := range p.Likes {
		if l.User == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotYetLiked
	}
	p.Likes = append(p.Likes[:idx], p.Likes[idx+1:]...)
	if err := s.Posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// AddComment prepends a comment carrying a snapshot of the author's
// name/avatar at comment time.
func (s *PostService) AddComment(ctx context.Context, postID, userID, text string) ([]entity.Comment, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	c := entity.Comment{
		ID:        uuid.NewString(),
		Text:      text,
		Name:      u.Name,
		Avatar:    u.AvatarURL,
		User:      userID,
		CreatedAt: time.Now().UTC(),
	}
	p.Comments = append([]entity.Comment{c}, p.Comments...)
	if err := s.Posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// DeleteComment removes exactly the comment identified by commentID after
// checking its authorship. The original API located the removal position by
// requester authorship, which could delete the wrong comment when a user
// had commented more than once; removal here targets the identified comment.
func (s *PostService) DeleteComment(ctx context.Context, postID, commentID, requesterID string) ([]entity.Comment, error) {
	p, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, c := range p.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCommentNotFound
	}
	if p.Comments[idx].User != requesterID {
		return nil, ErrNotAuthorized
	}
	p.Comments = append(p.Comments[:idx], p.Comments[idx+1:]...)
	if err := s.Posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}
