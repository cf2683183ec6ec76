package services

import (
	"errors"
	"fmt"
	"time"

	"grove/internal/cache"
	"grove/internal/models"

	"gorm.io/gorm"
)

const indexCacheKeyFormat = "feed:index:page:%d"

// FeedService produces the ordered, paginated post feeds: global, per group,
// per author and per follower. Only the global feed goes through the cache;
// it is the one view every visitor hits.
type FeedService struct {
	db    *gorm.DB
	cache *cache.Cache
	ttl   time.Duration
}

func NewFeedService(db *gorm.DB, c *cache.Cache, ttl time.Duration) *FeedService {
	return &FeedService{db: db, cache: c, ttl: ttl}
}

// ListAll returns the global feed, newest first. Pages are served from the
// cache inside the TTL window; mutating writes clear the cache, so a stale
// page can outlive the data by at most the window.
func (s *FeedService) ListAll(page int) (*Page, error) {
	key := fmt.Sprintf(indexCacheKeyFormat, page)
	if cached := s.cache.Get(key); cached != nil {
		if p, ok := cached.(*Page); ok {
			return p, nil
		}
	}

	p, err := paginatePosts(func() *gorm.DB { return s.db }, page)
	if err != nil {
		return nil, err
	}
	fillCommentCounts(s.db, p.Posts)

	s.cache.Set(key, p, s.ttl)
	return p, nil
}

// ListByGroup returns the group's feed plus the group itself for the page
// header. Unknown slugs are ErrNotFound.
func (s *FeedService) ListByGroup(slug string, page int) (*models.Group, *Page, error) {
	var group models.Group
	if err := s.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	p, err := paginatePosts(func() *gorm.DB {
		return s.db.Where("group_id = ?", group.ID)
	}, page)
	if err != nil {
		return nil, nil, err
	}
	fillCommentCounts(s.db, p.Posts)

	return &group, p, nil
}

// ListByAuthor returns the author's profile feed. Unknown usernames are
// ErrNotFound.
func (s *FeedService) ListByAuthor(username string, page int) (*models.User, *Page, error) {
	var author models.User
	if err := s.db.Where("username = ?", username).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	p, err := paginatePosts(func() *gorm.DB {
		return s.db.Where("author_id = ?", author.ID)
	}, page)
	if err != nil {
		return nil, nil, err
	}
	fillCommentCounts(s.db, p.Posts)

	return &author, p, nil
}

// ListFollowed returns posts by every author the user currently follows. The
// feed is computed live from the follow edges, so an unfollow removes that
// author's posts immediately, history included.
func (s *FeedService) ListFollowed(userID uint, page int) (*Page, error) {
	p, err := paginatePosts(func() *gorm.DB {
		return s.db.Where(
			"author_id IN (?)",
			s.db.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", userID),
		)
	}, page)
	if err != nil {
		return nil, err
	}
	fillCommentCounts(s.db, p.Posts)
	return p, nil
}
