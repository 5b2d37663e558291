package api

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"idea-eval/backend/internal/ai"
	"idea-eval/backend/internal/idea"
	"idea-eval/backend/internal/scoring"
)

// Config defines server dependencies.
type Config struct {
	AllowedOrigins []string
	AIConfig       ai.Config
	DisableAI      bool
	// Completer overrides the client built from AIConfig.
	Completer ai.Completer
}

// Server wires HTTP handlers with the idea service and the rule engine.
type Server struct {
	ideas          *idea.Service
	allowedOrigins []string
	views          *template.Template
}

var (
	errMethodNotAllowed = errors.New("Method not allowed")
	errIdeaRequired     = errors.New("Idea is required")
	errAINotConfigured  = errors.New("AI provider not configured")
	errGenerateFailed   = errors.New("Failed to generate idea")
	errValidateFailed   = errors.New("Failed to validate idea")
)

// NewServer constructs the API server.
func NewServer(cfg Config) (*Server, error) {
	completer := cfg.Completer
	if completer == nil {
		if cfg.DisableAI {
			logrus.Info("AI client disabled via configuration")
		} else {
			client, err := ai.NewClient(cfg.AIConfig)
			switch {
			case err == nil:
				completer = client
			case errors.Is(err, ai.ErrDisabled):
				return nil, fmt.Errorf("ai client disabled: configure an API key or set DISABLE_AI=true")
			default:
				return nil, fmt.Errorf("ai client: %w", err)
			}
		}
	}

	views, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	server := &Server{
		ideas:          idea.NewService(completer),
		allowedOrigins: cfg.AllowedOrigins,
		views:          views,
	}
	if server.ideas.Enabled() {
		logrus.WithField("model", server.ideas.Model()).Info("AI client enabled")
	}
	return server, nil
}

// Router configures gin routes.
func (s *Server) Router() (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.HandleMethodNotAllowed = true

	corsCfg := cors.DefaultConfig()
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
		corsCfg.AllowCredentials = true
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.ExposeHeaders = []string{requestIDHeader, "X-Idea-Model", "X-Idea-Fallback"}
	r.Use(cors.New(corsCfg))

	r.SetHTMLTemplate(s.views)
	r.NoMethod(func(c *gin.Context) {
		s.renderError(c, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})

	api := r.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)
		api.GET("/config", s.handleConfig)
		api.POST("/generate-idea", s.handleGenerateIdea)
		api.POST("/validate-idea", s.handleValidateIdea)
		api.POST("/recommendations", s.handleRecommendations)
	}

	r.GET("/", s.handleIndex)
	r.POST("/generate", s.handleGenerateForm)
	r.POST("/validate", s.handleValidateForm)

	return r, nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleConfig(c *gin.Context) {
	provider, model, _ := strings.Cut(s.ideas.Model(), "/")
	c.JSON(http.StatusOK, ConfigResponse{
		GenerateCategories: idea.GenerateCategories(),
		ValidateCategories: idea.ValidateCategories(),
		AIEnabled:          s.ideas.Enabled(),
		Provider:           provider,
		Model:              model,
		Cutoff:             scoring.Cutoff,
	})
}

func (s *Server) handleGenerateIdea(c *gin.Context) {
	var req GenerateIdeaRequest
	if c.Request.Body != nil {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			s.renderError(c, http.StatusBadRequest, err)
			return
		}
	}

	result, err := s.ideas.Generate(c.Request.Context(), req.category())
	if err != nil {
		s.renderUpstreamError(c, err, errGenerateFailed)
		return
	}
	s.renderResult(c, result)
}

func (s *Server) handleValidateIdea(c *gin.Context) {
	var req ValidateIdeaRequest
	if c.Request.Body != nil {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			s.renderError(c, http.StatusBadRequest, err)
			return
		}
	}

	result, err := s.ideas.Validate(c.Request.Context(), req.Idea, req.Category)
	if err != nil {
		if errors.Is(err, idea.ErrIdeaRequired) {
			s.renderError(c, http.StatusBadRequest, errIdeaRequired)
			return
		}
		s.renderUpstreamError(c, err, errValidateFailed)
		return
	}
	s.renderResult(c, result)
}

func (s *Server) handleRecommendations(c *gin.Context) {
	var req RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, http.StatusBadRequest, fmt.Errorf("viability, feasibility and usability are required: %w", err))
		return
	}
	scores := req.scores()
	c.JSON(http.StatusOK, RecommendationsResponse{
		Items:  scoring.RecommendationsFor(scores),
		Grades: gradesFor(scores),
	})
}

func (s *Server) renderResult(c *gin.Context, result idea.Result) {
	if result.Model != "" {
		c.Header("X-Idea-Model", result.Model)
	}
	if result.Fallback {
		c.Header("X-Idea-Fallback", "true")
	}
	c.JSON(http.StatusOK, result.Validation)
}

// renderUpstreamError logs the cause and answers with a generic message.
func (s *Server) renderUpstreamError(c *gin.Context, err error, public error) {
	_ = c.Error(err)
	if errors.Is(err, ai.ErrDisabled) {
		s.renderError(c, http.StatusServiceUnavailable, errAINotConfigured)
		return
	}
	logrus.WithError(err).WithField("path", c.FullPath()).Error(public.Error())
	s.renderError(c, http.StatusInternalServerError, public)
}

func (s *Server) renderError(c *gin.Context, status int, err error) {
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
