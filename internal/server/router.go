package server

import (
	"embed"
	"html/template"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/muurk/deckcalc/internal/config"
	"github.com/muurk/deckcalc/internal/estimate"
)

//go:embed templates/*.html
var templateFS embed.FS

// NewRouter builds the gin engine serving the form page and the
// calculation endpoints.
func NewRouter(cfg *config.Config, calc *estimate.Calculator) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger())

	if cc, ok := corsConfig(cfg.Server.CORSOrigins); ok {
		r.Use(cors.New(cc))
	}

	r.SetHTMLTemplate(template.Must(template.New("").ParseFS(templateFS, "templates/*.html")))

	h := &handlers{calc: calc, limits: cfg.Limits, origins: cfg.Server.CORSOrigins}

	r.GET("/", h.index)
	r.POST("/calculate", h.calculate)
	r.GET("/ws", h.stream)
	r.GET("/health", h.health)

	return r
}

// corsConfig translates the configured origin list. An empty list disables
// CORS handling and "*" allows any origin.
func corsConfig(origins []string) (cors.Config, bool) {
	if len(origins) == 0 {
		return cors.Config{}, false
	}

	cc := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		MaxAge:       12 * time.Hour,
	}
	if allowsAnyOrigin(origins) {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cc, true
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
