package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/blogbridge-backend/internal/data/repos/auth"
	"github.com/yungbote/blogbridge-backend/internal/data/repos/blog"
	"github.com/yungbote/blogbridge-backend/internal/data/repos/user"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo
type BlacklistedTokenRepo = auth.BlacklistedTokenRepo
type BlogRepo = blog.BlogRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewBlacklistedTokenRepo(db *gorm.DB, baseLog *logger.Logger) BlacklistedTokenRepo {
	return auth.NewBlacklistedTokenRepo(db, baseLog)
}
func NewBlogRepo(db *gorm.DB, baseLog *logger.Logger) BlogRepo { return blog.NewBlogRepo(db, baseLog) }
