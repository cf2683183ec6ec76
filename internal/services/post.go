package services

import (
	"errors"
	"strings"

	"grove/internal/cache"
	"grove/internal/models"

	"gorm.io/gorm"
)

// PostInput is the typed form payload for creating or editing a post.
type PostInput struct {
	Text    string
	GroupID *uint
	Image   string
}

// PostService owns the post write paths and the detail read. Every mutating
// write clears the feed cache so the index never serves content older than
// the last write plus the TTL window.
type PostService struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPostService(db *gorm.DB, c *cache.Cache) *PostService {
	return &PostService{db: db, cache: c}
}

func (s *PostService) validate(in PostInput) error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Text) == "" {
		fields["text"] = "Text must not be empty"
	}
	if in.GroupID != nil {
		var group models.Group
		if err := s.db.First(&group, *in.GroupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fields["group"] = "Unknown group"
			} else {
				return err
			}
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Create stores a new post by userID. The publication timestamp is assigned
// by the store on insert, so feed order follows creation order.
func (s *PostService) Create(userID uint, in PostInput) (*models.Post, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	post := models.Post{
		Text:     in.Text,
		AuthorID: userID,
		GroupID:  in.GroupID,
		Image:    in.Image,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}

	s.cache.Clear()
	return &post, nil
}

// Edit updates text, group and image of an existing post. Only the author may
// edit; anyone else gets ErrNotAuthor and the handler sends them back to the
// read-only detail view. The publication timestamp never changes.
func (s *PostService) Edit(userID, postID uint, in PostInput) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if post.AuthorID != userID {
		return nil, ErrNotAuthor
	}

	if err := s.validate(in); err != nil {
		return nil, err
	}

	post.Text = in.Text
	post.GroupID = in.GroupID
	if in.Image != "" {
		post.Image = in.Image
	}
	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}

	s.cache.Clear()
	return &post, nil
}

// Get loads a single post with author and group resolved.
func (s *PostService) Get(postID uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("Author").Preload("Group").First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var count int64
	s.db.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&count)
	post.CommentCount = int(count)

	return &post, nil
}

// Groups lists every group, for the post form's select box.
func (s *PostService) Groups() ([]models.Group, error) {
	var groups []models.Group
	err := s.db.Order("id ASC").Find(&groups).Error
	return groups, err
}

// Comments returns a post's comments, newest first.
func (s *PostService) Comments(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return comments, err
}
