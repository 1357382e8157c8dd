package http

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sujalbistaa/postpilot/internal/form"
	"github.com/sujalbistaa/postpilot/internal/models"
	"github.com/sujalbistaa/postpilot/internal/session"
)

const (
	viewPosts     = "posts"
	viewCalendar  = "calendar"
	viewAnalytics = "analytics"
)

type tab struct {
	Name   string
	Title  string
	Active bool
}

type statusCount struct {
	Status models.Status
	Count  int
}

type confirmDelete struct {
	ID   int64
	View string
}

type pageData struct {
	View           string
	Tabs           []tab
	Stats          models.Stats
	Posts          []models.Post
	Upcoming       []models.Post
	PlatformCounts []models.PlatformCount
	StatusCounts   []statusCount
	Form           session.View
	Platforms      []models.Platform
	Statuses       []models.Status
	ConfirmDelete  *confirmDelete
}

func normalizeView(v string) string {
	switch v {
	case viewCalendar, viewAnalytics:
		return v
	default:
		return viewPosts
	}
}

func viewURL(view string) string {
	return "/?view=" + url.QueryEscape(normalizeView(view))
}

func (e *Env) redirectToView(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, viewURL(c.PostForm("view")))
}

// Index renders the selected view together with the form and any pending
// delete confirmation.
func (e *Env) Index(c *gin.Context) {
	ctx := c.Request.Context()
	data := pageData{
		View:      normalizeView(c.Query("view")),
		Platforms: models.Platforms,
		Statuses:  models.FormStatuses,
	}
	for _, t := range []tab{{Name: viewPosts, Title: "Posts"}, {Name: viewCalendar, Title: "Calendar"}, {Name: viewAnalytics, Title: "Analytics"}} {
		t.Active = t.Name == data.View
		data.Tabs = append(data.Tabs, t)
	}

	var err error
	if data.Stats, err = e.Store.Stats(ctx); err != nil {
		e.renderFailure(c, err)
		return
	}
	switch data.View {
	case viewPosts:
		data.Posts, err = e.Store.List(ctx)
	case viewCalendar:
		data.Upcoming, err = e.Store.Upcoming(ctx)
	case viewAnalytics:
		data.PlatformCounts, err = e.Store.PlatformCounts(ctx)
		data.StatusCounts = []statusCount{
			{Status: models.StatusScheduled, Count: data.Stats.Scheduled},
			{Status: models.StatusPublished, Count: data.Stats.Published},
			{Status: models.StatusDraft, Count: data.Stats.Draft},
		}
	}
	if err != nil {
		e.renderFailure(c, err)
		return
	}

	if raw := c.Query("confirm_delete"); raw != "" {
		if id, perr := strconv.ParseInt(raw, 10, 64); perr == nil {
			if _, found, gerr := e.Store.Get(ctx, id); gerr == nil && found {
				data.ConfirmDelete = &confirmDelete{ID: id, View: data.View}
			}
		}
	}

	data.Form = sessionFrom(c).Snapshot()
	c.HTML(http.StatusOK, "index", data)
}

// NewPost opens an empty form.
func (e *Env) NewPost(c *gin.Context) {
	if _, err := sessionFrom(c).Dispatch(c.Request.Context(), session.BeginCreate{}); err != nil {
		e.renderFailure(c, err)
		return
	}
	e.redirectToView(c)
}

// EditPost opens the form on an existing post.
func (e *Env) EditPost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	if _, err := sessionFrom(c).Dispatch(c.Request.Context(), session.BeginEdit{ID: id}); err != nil {
		e.renderFailure(c, err)
		return
	}
	e.redirectToView(c)
}

// SubmitForm applies the posted fields to the draft and then runs the
// button's action: toggle:<platform>, submit or cancel.
func (e *Env) SubmitForm(c *gin.Context) {
	ctx := c.Request.Context()
	s := sessionFrom(c)

	action := c.PostForm("action")
	var cmd session.Command
	switch {
	case action == "submit":
		cmd = session.Submit{}
	case action == "cancel":
		cmd = session.Reset{}
	case strings.HasPrefix(action, "toggle:"):
		cmd = session.TogglePlatform{Platform: models.Platform(strings.TrimPrefix(action, "toggle:"))}
	default:
		respondError(c, http.StatusBadRequest, "Unknown form action")
		return
	}

	for _, name := range form.Fields {
		value, present := c.GetPostForm(name)
		if !present {
			continue
		}
		if _, err := s.Dispatch(ctx, session.SetField{Name: name, Value: value}); err != nil {
			e.renderFailure(c, err)
			return
		}
	}

	if action == "submit" && !e.Limiter.Allow(c.ClientIP()) {
		s.Notify(tooManyRequestsMessage)
		e.redirectToView(c)
		return
	}

	res, err := s.Dispatch(ctx, cmd)
	switch {
	case errors.Is(err, models.ErrMissingRequiredField):
		// The session keeps the form open and queues the notice.
	case err != nil:
		e.renderFailure(c, err)
		return
	case res.Created:
		log.Printf("[FORM] created post %d", res.Post.ID)
	case res.Updated:
		log.Printf("[FORM] updated post %d", res.Post.ID)
	}
	e.redirectToView(c)
}

// DeletePostPage removes a post once the confirmation dialog has been accepted.
// Without confirm=yes it redirects to the dialog instead.
func (e *Env) DeletePostPage(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}
	confirmed := c.PostForm("confirm") == "yes"
	res, err := sessionFrom(c).Dispatch(c.Request.Context(), session.Delete{ID: id, Confirmed: confirmed})
	if errors.Is(err, session.ErrDeleteNotConfirmed) {
		c.Redirect(http.StatusSeeOther, viewURL(c.PostForm("view"))+"&confirm_delete="+strconv.FormatInt(id, 10))
		return
	}
	if err != nil {
		e.renderFailure(c, err)
		return
	}
	if res.Deleted {
		log.Printf("[FORM] deleted post %d", id)
	}
	e.redirectToView(c)
}

func (e *Env) renderFailure(c *gin.Context, err error) {
	log.Printf("Error rendering %s: %v", c.Request.URL.Path, err)
	c.AbortWithStatus(http.StatusInternalServerError)
}
