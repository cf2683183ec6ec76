package handlers

import (
	"errors"
	"net/http"

	"grove/internal/logger"
	"grove/internal/services"
	"grove/internal/utils"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feeds *services.FeedService
}

func NewFeedHandler(feeds *services.FeedService) *FeedHandler {
	return &FeedHandler{feeds: feeds}
}

// Index - global feed, GET /
func (h *FeedHandler) Index(c *gin.Context) {
	page := utils.PageParam(c.Query("page"))

	p, err := h.feeds.ListAll(page)
	if err != nil {
		logger.Sugar.Errorf("index feed: %v", err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	Render(c, http.StatusOK, "index.html", gin.H{
		"Title": "Latest posts",
		"Page":  p,
	})
}

// GroupPosts - one group's feed, GET /group/:slug/
func (h *FeedHandler) GroupPosts(c *gin.Context) {
	slug := c.Param("slug")
	page := utils.PageParam(c.Query("page"))

	group, p, err := h.feeds.ListByGroup(slug, page)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			NotFound(c)
			return
		}
		logger.Sugar.Errorf("group feed %s: %v", slug, err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	Render(c, http.StatusOK, "group.html", gin.H{
		"Title": group.Title,
		"Group": group,
		"Page":  p,
	})
}

// Followed - posts by authors the current user follows, GET /follow/
func (h *FeedHandler) Followed(c *gin.Context) {
	user := CurrentUser(c)
	page := utils.PageParam(c.Query("page"))

	p, err := h.feeds.ListFollowed(user.ID, page)
	if err != nil {
		logger.Sugar.Errorf("followed feed for %s: %v", user.Username, err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	Render(c, http.StatusOK, "follow.html", gin.H{
		"Title": "Your feed",
		"Page":  p,
	})
}
