package services

import (
	"grove/internal/models"

	"gorm.io/gorm"
)

// PageSize is the fixed number of posts per feed page.
const PageSize = 10

// Page is one page of a post feed.
type Page struct {
	Posts      []models.Post
	Number     int
	TotalPages int
	TotalCount int64
}

// HasPrev reports whether an earlier page exists.
func (p *Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a later page exists.
func (p *Page) HasNext() bool { return p.Number < p.TotalPages }

// clampPage maps any requested page number onto a valid one. Requests past
// the end get the last page, never an error; callers depend on this.
func clampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

func pageCount(total int64, perPage int) int {
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages == 0 {
		pages = 1
	}
	return pages
}

// paginatePosts runs a post query twice, once for the count and once for the
// clamped page window, with authors and groups eagerly loaded. base must
// return a fresh query each call.
func paginatePosts(base func() *gorm.DB, page int) (*Page, error) {
	var total int64
	if err := base().Model(&models.Post{}).Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := pageCount(total, PageSize)
	page = clampPage(page, totalPages)

	var posts []models.Post
	err := base().Model(&models.Post{}).
		Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").
		Limit(PageSize).
		Offset((page - 1) * PageSize).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return &Page{
		Posts:      posts,
		Number:     page,
		TotalPages: totalPages,
		TotalCount: total,
	}, nil
}

// fillCommentCounts batch-loads comment counts for a page of posts.
func fillCommentCounts(db *gorm.DB, posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countResult struct {
		PostID uint
		Count  int
	}
	var results []countResult
	db.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int, len(results))
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}
