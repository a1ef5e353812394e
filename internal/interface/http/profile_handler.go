package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devconnector/devconnector-api/internal/application"
	"github.com/devconnector/devconnector-api/internal/infrastructure/github"
	"github.com/devconnector/devconnector-api/pkg/response"
	"github.com/devconnector/devconnector-api/pkg/validation"
)

// ProfileHandler serves the profile endpoints, including the embedded
// experience/education sequences and the GitHub repo proxy.
type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

// upsertProfileRequest is a sparse patch: optional fields are pointers so
// that "absent" and "set to empty" stay distinguishable.
type upsertProfileRequest struct {
	Status string `json:"status" binding:"required"`
	Skills string `json:"skills" binding:"required"`

	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	GithubUsername *string `json:"githubusername"`

	Youtube   *string `json:"youtube"`
	Facebook  *string `json:"facebook"`
	Twitter   *string `json:"twitter"`
	Instagram *string `json:"instagram"`
	Linkedin  *string `json:"linkedin"`
}

type experienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type educationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required"`
	From         string `json:"from" binding:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// GetMe GET /api/profile/me
func (h *ProfileHandler) GetMe(c *gin.Context) {
	uid := c.GetString("userID")
	p, err := h.Svc.GetOwn(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrProfileNotFound) {
			response.Msg(c, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		response.ServerError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// Upsert POST /api/profile
func (h *ProfileHandler) Upsert(c *gin.Context) {
	uid := c.GetString("userID")
	var req upsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validation.ToErrors(err))
		return
	}
	in := application.ProfileInput{
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Facebook:       req.Facebook,
		Twitter:        req.Twitter,
		Instagram:      req.Instagram,
		Linkedin:       req.Linkedin,
	}
	p, err := h.Svc.Upsert(c.Request.Context(), uid, in)
	if err != nil {
		response.ServerError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// List GET /api/profile (public)
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.ServerError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, profiles)
}

// GetByUser GET /api/profile/user/:user_id (public)
func (h *ProfileHandler) GetByUser(c *gin.Context) {
	p, err := h.Svc.GetByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		if errors.Is(err, application.ErrProfileNotFound) {
			response.Msg(c, http.StatusBadRequest, "Profile not found")
			return
		}
		response.ServerError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// DeleteAccount DELETE /api/profile — removes profile and user, but not the
// user's posts (parity with the original API).
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.DeleteAccount(c.Request.Context(), uid); err != nil {
		response.ServerError(c, h.Logger, err)
		return
	}
	response.Msg(c, http.StatusOK, "User successfully deleted")
}

// AddExperience PUT /api/profile/experience
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	uid := c.GetString("userID")
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validation.ToErrors(err))
		return
	}
	p, err := h.Svc.AddExperience(c.Request.Context(), uid, application.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		h.profileError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// RemoveExperience DELETE /api/profile/experience/:exp_id
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	uid := c.GetString("userID")
	p, err := h.Svc.RemoveExperience(c.Request.Context(), uid, c.Param("exp_id"))
	if err != nil {
		h.profileError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// AddEducation PUT /api/profile/education
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	uid := c.GetString("userID")
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validation.ToErrors(err))
		return
	}
	p, err := h.Svc.AddEducation(c.Request.Context(), uid, application.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		h.profileError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// RemoveEducation DELETE /api/profile/education/:edu_id
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	uid := c.GetString("userID")
	p, err := h.Svc.RemoveEducation(c.Request.Context(), uid, c.Param("edu_id"))
	if err != nil {
		h.profileError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}

// GithubRepos GET /api/profile/github/:username (public)
func (h *ProfileHandler) GithubRepos(c *gin.Context) {
	repos, err := h.Svc.GithubRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, github.ErrNoGithubProfile) {
			response.Msg(c, http.StatusNotFound, "No github profile found")
			return
		}
		response.ServerError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, repos)
}

func (h *ProfileHandler) profileError(c *gin.Context, err error) {
	if errors.Is(err, application.ErrProfileNotFound) {
		response.Msg(c, http.StatusBadRequest, "There is no profile for this user")
		return
	}
	response.ServerError(c, h.Logger, err)
}
