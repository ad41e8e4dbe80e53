package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/blogbridge-backend/internal/data/repos"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

type Repos struct {
	User             repos.UserRepo
	BlacklistedToken repos.BlacklistedTokenRepo
	Blog             repos.BlogRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:             repos.NewUserRepo(db, log),
		BlacklistedToken: repos.NewBlacklistedTokenRepo(db, log),
		Blog:             repos.NewBlogRepo(db, log),
	}
}
