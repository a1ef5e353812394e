package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devconnector/devconnector-api/internal/application"
	"github.com/devconnector/devconnector-api/pkg/response"
	"github.com/devconnector/devconnector-api/pkg/validation"
)

// PostHandler serves the post endpoints, including likes and comments.
type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type postRequest struct {
	Text string `json:"text" binding:"required"`
}

type commentRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validation.ToErrors(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), uid, req.Text)
	if err != nil {
		response.ServerError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// List GET /api/posts — newest first
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.ServerError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, posts)
}

// Get GET /api/posts/:post_id
func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		h.postError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// Delete DELETE /api/posts/:post_id — author only
func (h *PostHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.Delete(c.Request.Context(), c.Param("post_id"), uid); err != nil {
		h.postError(c, err)
		return
	}
	response.Msg(c, http.StatusOK, "Post removed")
}

// Like PUT /api/posts/like/:post_id
func (h *PostHandler) Like(c *gin.Context) {
	uid := c.GetString("userID")
	likes, err := h.Svc.Like(c.Request.Context(), c.Param("post_id"), uid)
	if err != nil {
		if errors.Is(err, application.ErrAlreadyLiked) {
			response.Msg(c, http.StatusBadRequest, "Post has already been liked")
			return
		}
		h.postError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, likes)
}

// Unlike PUT /api/posts/unlike/:post_id
func (h *PostHandler) Unlike(c *gin.Context) {
	uid := c.GetString("userID")
	likes, err := h.Svc.Unlike(c.Request.Context(), c.Param("post_id"), uid)
	if err != nil {
		if errors.Is(err, application.ErrNotYetLiked) {
			response.Msg(c, http.StatusBadRequest, "Post has not yet been liked")
			return
		}
		h.postError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, likes)
}

// AddComment POST /api/posts/comment/:post_id
func (h *PostHandler) AddComment(c *gin.Context) {
	uid := c.GetString("userID")
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validation.ToErrors(err))
		return
	}
	comments, err := h.Svc.AddComment(c.Request.Context(), c.Param("post_id"), uid, req.Text)
	if err != nil {
		h.postError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, comments)
}

// DeleteComment DELETE /api/posts/comment/:post_id/:comment_id
func (h *PostHandler) DeleteComment(c *gin.Context) {
	uid := c.GetString("userID")
	comments, err := h.Svc.DeleteComment(c.Request.Context(), c.Param("post_id"), c.Param("comment_id"), uid)
	if err != nil {
		if errors.Is(err, application.ErrCommentNotFound) {
			response.Msg(c, http.StatusNotFound, "Comment not found")
			return
		}
		h.postError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, comments)
}

func (h *PostHandler) postError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrPostNotFound):
		response.Msg(c, http.StatusNotFound, "Post not found")
	case errors.Is(err, application.ErrNotAuthorized):
		response.Msg(c, http.StatusUnauthorized, "User not authorized")
	default:
		response.ServerError(c, h.Logger, err)
	}
}
