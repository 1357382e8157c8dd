package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/sujalbistaa/postpilot/internal/config"
	"github.com/sujalbistaa/postpilot/internal/session"
	"github.com/sujalbistaa/postpilot/internal/store"
)

const janitorInterval = 10 * time.Minute

// SetupRoutes configures all application routes and middleware.
func SetupRoutes(router *gin.Engine, st *store.Store, cfg config.Config) (*Env, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	env := &Env{
		Store:    st,
		Sessions: session.NewRegistry(st),
		Limiter:  NewIPRateLimiter(rate.Limit(cfg.CreateRateRPS), cfg.CreateRateBurst),
	}

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())
	router.Use(corsMiddleware(cfg.CORSOrigin))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now()})
	})

	api := router.Group("/api")
	{
		api.GET("/posts", env.ListPosts)
		api.GET("/posts/upcoming", env.UpcomingPosts)
		api.GET("/posts/:id", env.GetPost)
		api.POST("/posts", RateLimitMiddleware(env.Limiter), env.CreatePost)
		api.PUT("/posts/:id", env.UpdatePost)
		api.DELETE("/posts/:id", env.DeletePost)
		api.GET("/stats", env.GetStats)
		api.GET("/platforms", env.GetPlatformCounts)
		api.GET("/platforms/:platform", env.GetPlatformCount)
	}

	pages := router.Group("/")
	pages.Use(SessionMiddleware(env.Sessions, cfg.SessionCookie))
	{
		pages.GET("/", env.Index)
		pages.POST("/posts/new", env.NewPost)
		pages.POST("/posts/:id/edit", env.EditPost)
		pages.POST("/posts/:id/delete", env.DeletePostPage)
		pages.POST("/form", env.SubmitForm)
	}

	return env, nil
}

func corsMiddleware(origin string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = []string{origin}
	}
	return cors.New(cfg)
}

// RunJanitor periodically drops idle rate-limiter visitors and form
// sessions until ctx is cancelled.
func (e *Env) RunJanitor(ctx context.Context, sessionIdle time.Duration) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			visitors := e.Limiter.Sweep()
			sessions := e.Sessions.Prune(sessionIdle)
			if visitors > 0 || sessions > 0 {
				log.Printf("[JANITOR] dropped %d visitors, %d sessions", visitors, sessions)
			}
		}
	}
}
