package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sujalbistaa/postpilot/internal/models"
	"github.com/sujalbistaa/postpilot/internal/session"
	"github.com/sujalbistaa/postpilot/internal/store"
)

const tooManyRequestsMessage = "Too many requests. Please wait."

// Env carries the dependencies shared by all handlers.
type Env struct {
	Store    *store.Store
	Sessions *session.Registry
	Limiter  *IPRateLimiter
}

func parsePostID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid post ID")
		return 0, false
	}
	return id, true
}

func (e *Env) ListPosts(c *gin.Context) {
	posts, err := e.Store.List(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching posts: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (e *Env) UpcomingPosts(c *gin.Context) {
	posts, err := e.Store.Upcoming(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching upcoming posts: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (e *Env) GetPost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	post, found, err := e.Store.Get(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error fetching post %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to fetch post")
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "Post not found")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (e *Env) GetStats(c *gin.Context) {
	stats, err := e.Store.Stats(c.Request.Context())
	if err != nil {
		log.Printf("Error computing stats: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (e *Env) GetPlatformCounts(c *gin.Context) {
	counts, err := e.Store.PlatformCounts(c.Request.Context())
	if err != nil {
		log.Printf("Error counting platforms: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to count platforms")
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (e *Env) GetPlatformCount(c *gin.Context) {
	platform := models.Platform(c.Param("platform"))
	if !models.KnownPlatform(platform) {
		respondError(c, http.StatusNotFound, "Unknown platform")
		return
	}
	n, err := e.Store.CountByPlatform(c.Request.Context(), platform)
	if err != nil {
		log.Printf("Error counting %s posts: %v", platform, err)
		respondError(c, http.StatusInternalServerError, "Failed to count platform")
		return
	}
	c.JSON(http.StatusOK, models.PlatformCount{Platform: platform, Count: n})
}

func (e *Env) CreatePost(c *gin.Context) {
	var input models.Draft
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	post, err := e.Store.Create(c.Request.Context(), input)
	if err != nil {
		e.writeStoreError(c, "create post", err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (e *Env) UpdatePost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	var input models.Draft
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	post, found, err := e.Store.Update(c.Request.Context(), id, input)
	if err != nil {
		e.writeStoreError(c, "update post", err)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, "Post not found")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (e *Env) DeletePost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	deleted, err := e.Store.Delete(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error deleting post %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, "Post not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (e *Env) writeStoreError(c *gin.Context, op string, err error) {
	if errors.Is(err, models.ErrMissingRequiredField) {
		respondError(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	log.Printf("Error in %s: %v", op, err)
	respondError(c, http.StatusInternalServerError, "Failed to "+op)
}
