package services

import (
	"errors"
	"strings"

	"grove/internal/cache"
	"grove/internal/models"

	"gorm.io/gorm"
)

// CommentService creates comments under posts. Comments are immutable once
// posted; there is no edit or delete path.
type CommentService struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewCommentService(db *gorm.DB, c *cache.Cache) *CommentService {
	return &CommentService{db: db, cache: c}
}

// Add attaches a comment by userID to the post. Empty text is a validation
// error, a missing post is ErrNotFound, and a successful write clears the
// feed cache.
func (s *CommentService) Add(userID, postID uint, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fieldError("text", "Text must not be empty")
	}

	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := models.Comment{
		PostID:   post.ID,
		AuthorID: userID,
		Text:     text,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	s.cache.Clear()
	return &comment, nil
}
