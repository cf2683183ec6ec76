package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"grove/internal/logger"
	"grove/internal/models"
	"grove/internal/services"
	"grove/internal/utils"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	posts    *services.PostService
	comments *services.CommentService
	images   *services.ImageStore
}

func NewPostHandler(posts *services.PostService, comments *services.CommentService, images *services.ImageStore) *PostHandler {
	return &PostHandler{posts: posts, comments: comments, images: images}
}

// renderedComment pairs a comment with its display HTML.
type renderedComment struct {
	models.Comment
	TextHTML template.HTML
}

// Detail - post page with comments and the comment form, GET /posts/:id/
func (h *PostHandler) Detail(c *gin.Context) {
	postID := uint(utils.StringToInt(c.Param("id")))

	post, err := h.posts.Get(postID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			NotFound(c)
			return
		}
		logger.Sugar.Errorf("post detail %d: %v", postID, err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	comments, err := h.posts.Comments(post.ID)
	if err != nil {
		logger.Sugar.Errorf("post comments %d: %v", postID, err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	rendered := make([]renderedComment, len(comments))
	for i, com := range comments {
		rendered[i] = renderedComment{
			Comment:  com,
			TextHTML: utils.RenderMarkdown(com.Text),
		}
	}

	isAuthor := false
	if user := CurrentUser(c); user != nil {
		isAuthor = user.ID == post.AuthorID
	}

	Render(c, http.StatusOK, "post/detail.html", gin.H{
		"Title":    "Post by " + post.Author.Username,
		"Post":     post,
		"PostHTML": utils.RenderMarkdown(post.Text),
		"Comments": rendered,
		"IsAuthor": isAuthor,
	})
}

// ShowCreate - post form, GET /create/
func (h *PostHandler) ShowCreate(c *gin.Context) {
	groups, err := h.posts.Groups()
	if err != nil {
		logger.Sugar.Errorf("load groups: %v", err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	Render(c, http.StatusOK, "post/form.html", gin.H{
		"Title":  "New post",
		"Groups": groups,
	})
}

// Create - POST /create/; on success redirects to the author's profile.
func (h *PostHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	in, vErr := h.readForm(c)
	if vErr == nil {
		_, err := h.posts.Create(user.ID, in)
		if err == nil {
			c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
			return
		}
		if !errors.As(err, &vErr) {
			logger.Sugar.Errorf("create post by %s: %v", user.Username, err)
			RenderError(c, http.StatusInternalServerError, "Something went wrong")
			return
		}
	}

	groups, _ := h.posts.Groups()
	Render(c, http.StatusBadRequest, "post/form.html", gin.H{
		"Title":  "New post",
		"Groups": groups,
		"Errors": vErr.Fields,
		"Text":   in.Text,
	})
}

// ShowEdit - edit form, GET /posts/:id/edit/; non-authors are sent to the
// read-only detail view.
func (h *PostHandler) ShowEdit(c *gin.Context) {
	user := CurrentUser(c)
	postID := uint(utils.StringToInt(c.Param("id")))

	post, err := h.posts.Get(postID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			NotFound(c)
			return
		}
		logger.Sugar.Errorf("edit form %d: %v", postID, err)
		RenderError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", post.ID))
		return
	}

	groups, _ := h.posts.Groups()
	Render(c, http.StatusOK, "post/form.html", gin.H{
		"Title":  "Edit post",
		"IsEdit": true,
		"Post":   post,
		"Groups": groups,
		"Text":   post.Text,
	})
}

// Edit - POST /posts/:id/edit/
func (h *PostHandler) Edit(c *gin.Context) {
	user := CurrentUser(c)
	postID := uint(utils.StringToInt(c.Param("id")))

	in, vErr := h.readForm(c)
	if vErr == nil {
		_, err := h.posts.Edit(user.ID, postID, in)
		switch {
		case err == nil:
			c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
			return
		case errors.Is(err, services.ErrNotFound):
			NotFound(c)
			return
		case errors.Is(err, services.ErrNotAuthor):
			// Not an error page: just back to the read-only view.
			c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
			return
		default:
			if !errors.As(err, &vErr) {
				logger.Sugar.Errorf("edit post %d by %s: %v", postID, user.Username, err)
				RenderError(c, http.StatusInternalServerError, "Something went wrong")
				return
			}
		}
	}

	post, err := h.posts.Get(postID)
	if err != nil {
		NotFound(c)
		return
	}
	groups, _ := h.posts.Groups()
	Render(c, http.StatusBadRequest, "post/form.html", gin.H{
		"Title":  "Edit post",
		"IsEdit": true,
		"Post":   post,
		"Groups": groups,
		"Errors": vErr.Fields,
		"Text":   in.Text,
	})
}

// AddComment - POST /posts/:id/comment/; always lands back on the detail
// view, with nothing created when the text was empty.
func (h *PostHandler) AddComment(c *gin.Context) {
	user := CurrentUser(c)
	postID := uint(utils.StringToInt(c.Param("id")))

	_, err := h.comments.Add(user.ID, postID, c.PostForm("text"))
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrNotFound):
			NotFound(c)
			return
		case errors.As(err, &vErr):
			// fall through to the redirect; the empty comment was dropped
		default:
			logger.Sugar.Errorf("comment on %d by %s: %v", postID, user.Username, err)
			RenderError(c, http.StatusInternalServerError, "Something went wrong")
			return
		}
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/", postID))
}

// readForm parses the post form, including the optional image upload.
func (h *PostHandler) readForm(c *gin.Context) (services.PostInput, *services.ValidationError) {
	in := services.PostInput{Text: c.PostForm("text")}

	if groupID := uint(utils.StringToInt(c.PostForm("group_id"))); groupID > 0 {
		in.GroupID = &groupID
	}

	file, header, err := c.Request.FormFile("image")
	if err == nil {
		defer file.Close()
		path, err := h.images.Save(file, header)
		if err != nil {
			var vErr *services.ValidationError
			if errors.As(err, &vErr) {
				return in, vErr
			}
			logger.Sugar.Errorf("save upload: %v", err)
			return in, &services.ValidationError{Fields: map[string]string{"image": "Could not store the image"}}
		}
		in.Image = path
	}

	return in, nil
}
