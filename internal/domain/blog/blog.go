package blog

import (
	"math"
	"time"

	"github.com/yungbote/blogbridge-backend/internal/domain/user"
)

type Blog struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint       `gorm:"not null;index;column:user_id" json:"user_id"`
	User      *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Title     string     `gorm:"type:varchar(255);not null;column:title" json:"title"`
	Content   string     `gorm:"type:text;not null;column:content" json:"content"`
	IsActive  bool       `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;index" json:"updated_at"`
}

func (Blog) TableName() string { return "blogs" }

// SortColumns maps the sort keys accepted from clients to their columns.
var SortColumns = map[string]string{
	"id":         "id",
	"user_id":    "user_id",
	"title":      "title",
	"content":    "content",
	"created_at": "created_at",
	"updated_at": "updated_at",
	"is_active":  "is_active",
}

// ListFilter describes one page of the global blog listing.
type ListFilter struct {
	Page       int
	Limit      int
	SortBy     string
	Descending bool
	Search     string
}

// Offset is the row offset of the page. ok is false when the offset does not
// fit in an int, which places the page past every row.
func (f ListFilter) Offset() (offset int, ok bool) {
	if f.Page < 1 || f.Limit < 1 {
		return 0, true
	}
	if f.Page-1 > math.MaxInt/f.Limit {
		return 0, false
	}
	return (f.Page - 1) * f.Limit, true
}

// Page is a slice of blogs plus pagination metadata.
type Page struct {
	Items []*Blog `json:"items"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
	Total int64   `json:"total"`
	Pages int64   `json:"pages"`
}

// PageCount is ceil(total/limit); zero when limit is not positive.
func PageCount(total int64, limit int) int64 {
	if limit <= 0 || total <= 0 {
		return 0
	}
	l := int64(limit)
	return (total + l - 1) / l
}
