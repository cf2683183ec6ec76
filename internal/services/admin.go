package services

import (
	"errors"
	"strings"

	"grove/internal/cache"
	"grove/internal/models"

	"gorm.io/gorm"
)

// AdminService covers the administrative lifecycle of groups and users.
// Deletions are physical and run their cascade rules inside one transaction
// rather than leaning on implicit framework behavior: a deleted group leaves
// its posts behind with a nulled group reference, a deleted user takes their
// posts, comments and follow edges (both directions) with them.
type AdminService struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewAdminService(db *gorm.DB, c *cache.Cache) *AdminService {
	return &AdminService{db: db, cache: c}
}

// CreateGroup adds a new group. Slugs are globally unique.
func (s *AdminService) CreateGroup(title, slug, description string) (*models.Group, error) {
	fields := map[string]string{}
	if strings.TrimSpace(title) == "" {
		fields["title"] = "Title must not be empty"
	}
	if strings.TrimSpace(slug) == "" {
		fields["slug"] = "Slug must not be empty"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	group := models.Group{Title: title, Slug: slug, Description: description}
	if err := s.db.Create(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fieldError("slug", "Slug is already taken")
		}
		return nil, err
	}
	return &group, nil
}

// DeleteGroup removes a group, nulling the group reference on its posts. The
// posts themselves survive.
func (s *AdminService) DeleteGroup(groupID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var group models.Group
		if err := tx.First(&group, groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Model(&models.Post{}).
			Where("group_id = ?", group.ID).
			Update("group_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&group).Error
	})
	if err != nil {
		return err
	}

	s.cache.Clear()
	return nil
}

// DeleteUser removes a user and everything attributed to them: their posts
// (with all comments under those posts), their comments elsewhere, and their
// follow edges as follower and as followed.
func (s *AdminService) DeleteUser(userID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		// Comments under the user's posts, by anyone.
		postIDs := tx.Model(&models.Post{}).Select("id").Where("author_id = ?", user.ID)
		if err := tx.Where("post_id IN (?)", postIDs).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("author_id = ?", user.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? OR author_id = ?", user.ID, user.ID).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", user.ID).Delete(&models.Post{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		return err
	}

	s.cache.Clear()
	return nil
}
