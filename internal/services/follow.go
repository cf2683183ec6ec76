package services

import (
	"errors"

	"grove/internal/models"

	"gorm.io/gorm"
)

// FollowService maintains the follow graph. Follow and Unfollow are
// idempotent so the UI buttons are safe to double-submit; the composite
// unique index on (user, author) is the real guard against duplicate edges,
// the existence check here only avoids the round trip.
type FollowService struct {
	db *gorm.DB
}

func NewFollowService(db *gorm.DB) *FollowService {
	return &FollowService{db: db}
}

func (s *FollowService) resolveAuthor(username string) (*models.User, error) {
	var author models.User
	if err := s.db.Where("username = ?", username).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &author, nil
}

// Follow creates the edge (userID -> author). Following yourself is a silent
// no-op, as is following someone twice. A duplicate-key failure from a
// concurrent request folds into the same success state.
func (s *FollowService) Follow(userID uint, authorUsername string) error {
	author, err := s.resolveAuthor(authorUsername)
	if err != nil {
		return err
	}

	if author.ID == userID {
		return nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Follow
		err := tx.Where("user_id = ? AND author_id = ?", userID, author.ID).First(&existing).Error
		if err == nil {
			return nil // already following
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&models.Follow{UserID: userID, AuthorID: author.ID}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// Unfollow removes the edge (userID -> author) if present. A missing edge is
// not an error.
func (s *FollowService) Unfollow(userID uint, authorUsername string) error {
	author, err := s.resolveAuthor(authorUsername)
	if err != nil {
		return err
	}

	return s.db.Where("user_id = ? AND author_id = ?", userID, author.ID).
		Delete(&models.Follow{}).Error
}

// IsFollowing reports whether the edge (userID -> authorID) exists.
func (s *FollowService) IsFollowing(userID, authorID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return count > 0, err
}
