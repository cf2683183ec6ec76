package handlers

import (
	"errors"
	"net/http"

	"grove/internal/logger"
	"grove/internal/services"
	"grove/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	feeds   *services.FeedService
	follows *services.FollowService
}

func NewProfileHandler(feeds *services.FeedService, follows *services.FollowService) *ProfileHandler {
	return &ProfileHandler{feeds: feeds, follows: follows}
}

// Profile - author page with their posts and the follow state,
// GET /profile/:username/
func (h *ProfileHandler) Profile(c *gin.Context) {
	username := c.Param("username")
	page := utils.PageParam(c.Query("page"))

	author, p, err := h.feeds.ListByAuthor(username, page)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			NotFound(c)
			return
		}
		logger.Sugar.Errorf("profile %s: %v", username, err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	following := false
	if user := CurrentUser(c); user != nil && user.ID != author.ID {
		following, err = h.follows.IsFollowing(user.ID, author.ID)
		if err != nil {
			logger.Sugar.Errorf("follow state %s -> %s: %v", user.Username, username, err)
		}
	}

	Render(c, http.StatusOK, "profile.html", gin.H{
		"Title":     author.Username,
		"Author":    author,
		"Page":      p,
		"Following": following,
	})
}

// Follow - POST /profile/:username/follow/; idempotent, self-follow is a
// no-op. Either way the user ends up back on the profile.
func (h *ProfileHandler) Follow(c *gin.Context) {
	user := CurrentUser(c)
	username := c.Param("username")

	if err := h.follows.Follow(user.ID, username); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			NotFound(c)
			return
		}
		logger.Sugar.Errorf("follow %s by %s: %v", username, user.Username, err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}

// Unfollow - POST /profile/:username/unfollow/; removing a missing edge is
// fine.
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	user := CurrentUser(c)
	username := c.Param("username")

	if err := h.follows.Unfollow(user.ID, username); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			NotFound(c)
			return
		}
		logger.Sugar.Errorf("unfollow %s by %s: %v", username, user.Username, err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+username+"/")
}
