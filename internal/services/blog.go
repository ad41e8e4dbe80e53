package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/blogbridge-backend/internal/data/repos"
	types "github.com/yungbote/blogbridge-backend/internal/domain"
	domainblog "github.com/yungbote/blogbridge-backend/internal/domain/blog"
	"github.com/yungbote/blogbridge-backend/internal/platform/apierr"
	"github.com/yungbote/blogbridge-backend/internal/platform/dbctx"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
	"github.com/yungbote/blogbridge-backend/internal/platform/messages"
)

const (
	DefaultBlogPage  = 1
	DefaultBlogLimit = 10
	MaxBlogLimit     = 100
)

type BlogInput struct {
	Title   string
	Content string
}

type BlogService interface {
	Create(dbc dbctx.Context, userID uint, in BlogInput) (*types.Blog, error)
	ListMine(dbc dbctx.Context, userID uint) ([]*types.Blog, error)
	ListFiltered(dbc dbctx.Context, filter types.BlogListFilter) (*types.BlogPage, error)
	Get(dbc dbctx.Context, userID, blogID uint) (*types.Blog, error)
	Update(dbc dbctx.Context, userID, blogID uint, in BlogInput) (*types.Blog, error)
	Delete(dbc dbctx.Context, userID, blogID uint) error
}

type blogService struct {
	db       *gorm.DB
	log      *logger.Logger
	blogRepo repos.BlogRepo
}

func NewBlogService(db *gorm.DB, log *logger.Logger, blogRepo repos.BlogRepo) BlogService {
	serviceLog := log.With("service", "BlogService")
	return &blogService{db: db, log: serviceLog, blogRepo: blogRepo}
}

func (bs *blogService) Create(dbc dbctx.Context, userID uint, in BlogInput) (*types.Blog, error) {
	created, err := bs.blogRepo.Create(dbc, []*types.Blog{{
		UserID:   userID,
		Title:    strings.TrimSpace(in.Title),
		Content:  in.Content,
		IsActive: true,
	}})
	if err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return created[0], nil
}

func (bs *blogService) ListMine(dbc dbctx.Context, userID uint) ([]*types.Blog, error) {
	blogs, err := bs.blogRepo.ListByUser(dbc, userID)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, nil
}

// ListFiltered pages through all blogs regardless of owner.
func (bs *blogService) ListFiltered(dbc dbctx.Context, filter types.BlogListFilter) (*types.BlogPage, error) {
	if filter.Page < 1 {
		filter.Page = DefaultBlogPage
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultBlogLimit
	}
	if filter.Limit > MaxBlogLimit {
		filter.Limit = MaxBlogLimit
	}
	items, total, err := bs.blogRepo.List(dbc, filter)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	if items == nil {
		items = []*types.Blog{}
	}
	return &types.BlogPage{
		Items: items,
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
		Pages: domainblog.PageCount(total, filter.Limit),
	}, nil
}

func (bs *blogService) Get(dbc dbctx.Context, userID, blogID uint) (*types.Blog, error) {
	b, err := bs.blogRepo.GetByIDForUser(dbc, blogID, userID)
	if err != nil {
		return nil, fmt.Errorf("load blog: %w", err)
	}
	if b == nil {
		return nil, apierr.NotFound("blog_not_found", messages.NotFound)
	}
	return b, nil
}

func (bs *blogService) Update(dbc dbctx.Context, userID, blogID uint, in BlogInput) (*types.Blog, error) {
	var updated *types.Blog
	err := bs.db.WithContext(requestCtx(dbc)).Transaction(func(tx *gorm.DB) error {
		inner := dbctx.Context{Ctx: dbc.Ctx, Tx: tx}
		b, err := bs.Get(inner, userID, blogID)
		if err != nil {
			return err
		}
		if err := bs.blogRepo.UpdateContent(inner, b, strings.TrimSpace(in.Title), in.Content); err != nil {
			return fmt.Errorf("update blog: %w", err)
		}
		updated, err = bs.Get(inner, userID, blogID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (bs *blogService) Delete(dbc dbctx.Context, userID, blogID uint) error {
	b, err := bs.Get(dbc, userID, blogID)
	if err != nil {
		return err
	}
	if err := bs.blogRepo.Delete(dbc, b); err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	bs.log.Debug("Blog deleted", "blog_id", b.ID, "user_id", userID)
	return nil
}
