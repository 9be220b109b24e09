package controller

import (
	"errors"
	"net/http"

	"github.com/Scalingo/sclng-github-skills/config"
	"github.com/Scalingo/sclng-github-skills/model"
	"github.com/Scalingo/sclng-github-skills/service"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type APIController interface {
	GetSkills(ctx *gin.Context)
	PostSkills(ctx *gin.Context)
	Health(ctx *gin.Context)
}

type apiController struct {
	skillsService service.SkillsService
	config        config.Config
}

func NewAPIController(config config.Config, service service.SkillsService) APIController {
	return apiController{
		skillsService: service,
		config:        config,
	}
}

// GetSkills reads the request from the query string: /skills?top=10&exclude=a&exclude=b
func (s apiController) GetSkills(c *gin.Context) {
	var request model.SkillsRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		s.invalidRequest(c, err)
		return
	}

	s.respond(c, request)
}

// PostSkills reads the request from a JSON body: {"top": 10, "exclude": ["a"]}
func (s apiController) PostSkills(c *gin.Context) {
	var request model.SkillsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		s.invalidRequest(c, err)
		return
	}

	s.respond(c, request)
}

func (s apiController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s apiController) respond(c *gin.Context, request model.SkillsRequest) {
	response, err := s.skillsService.GetSkills(c.Request.Context(), request)
	if err != nil {
		c.JSON(StatusForError(err), model.NewAPIError(err))
		return
	}

	c.JSON(http.StatusOK, response)
}

func (s apiController) invalidRequest(c *gin.Context, err error) {
	log.WithError(err).Debug("unable to bind skills request")

	c.JSON(http.StatusBadRequest, model.APIError{
		Code:    model.CodeInvalidRequest,
		Message: err.Error(),
	})
}

// StatusForError maps the error taxonomy to http status codes
func StatusForError(err error) int {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var upstreamErr *model.UpstreamError
	if errors.As(err, &upstreamErr) {
		if upstreamErr.Code == model.CodeRateLimitReached {
			return http.StatusTooManyRequests
		}

		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
