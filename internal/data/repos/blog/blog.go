package blog

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/blogbridge-backend/internal/domain"
	domainblog "github.com/yungbote/blogbridge-backend/internal/domain/blog"
	"github.com/yungbote/blogbridge-backend/internal/platform/dbctx"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

type BlogRepo interface {
	Create(dbc dbctx.Context, blogs []*types.Blog) ([]*types.Blog, error)
	ListByUser(dbc dbctx.Context, userID uint) ([]*types.Blog, error)
	GetByIDForUser(dbc dbctx.Context, blogID, userID uint) (*types.Blog, error)
	UpdateContent(dbc dbctx.Context, blog *types.Blog, title, content string) error
	Delete(dbc dbctx.Context, blog *types.Blog) error
	List(dbc dbctx.Context, filter types.BlogListFilter) ([]*types.Blog, int64, error)
}

type blogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBlogRepo(db *gorm.DB, baseLog *logger.Logger) BlogRepo {
	repoLog := baseLog.With("repo", "BlogRepo")
	return &blogRepo{db: db, log: repoLog}
}

func (br *blogRepo) Create(dbc dbctx.Context, blogs []*types.Blog) ([]*types.Blog, error) {
	if len(blogs) == 0 {
		return []*types.Blog{}, nil
	}
	if err := dbc.Conn(br.db).Create(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

func (br *blogRepo) ListByUser(dbc dbctx.Context, userID uint) ([]*types.Blog, error) {
	results := []*types.Blog{}
	if err := dbc.Conn(br.db).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Order("id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByIDForUser returns nil, nil when the blog is missing or owned by someone else.
func (br *blogRepo) GetByIDForUser(dbc dbctx.Context, blogID, userID uint) (*types.Blog, error) {
	var b types.Blog
	err := dbc.Conn(br.db).
		Where("id = ? AND user_id = ?", blogID, userID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (br *blogRepo) UpdateContent(dbc dbctx.Context, blog *types.Blog, title, content string) error {
	return dbc.Conn(br.db).
		Model(blog).
		Updates(map[string]any{
			"title":   title,
			"content": content,
		}).Error
}

func (br *blogRepo) Delete(dbc dbctx.Context, blog *types.Blog) error {
	return dbc.Conn(br.db).Delete(blog).Error
}

// List pages through every blog. Unknown sort keys fall back to updated_at DESC.
func (br *blogRepo) List(dbc dbctx.Context, filter types.BlogListFilter) ([]*types.Blog, int64, error) {
	q := dbc.Conn(br.db).Model(&types.Blog{})
	// whitespace is a real search term; only the empty string means no filter
	if filter.Search != "" {
		q = q.Where("LOWER(title) LIKE LOWER(?) ESCAPE '\\'", "%"+escapeLike(filter.Search)+"%")
	}
	// count and page queries branch from the same filter
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	results := []*types.Blog{}
	offset, ok := filter.Offset()
	if !ok || int64(offset) >= total {
		return results, total, nil
	}

	column, ok := domainblog.SortColumns[filter.SortBy]
	desc := filter.Descending
	if !ok {
		column, desc = "updated_at", true
	}

	if err := q.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc}).
		Offset(offset).
		Limit(filter.Limit).
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
