package auth

import (
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/blogbridge-backend/internal/domain"
	"github.com/yungbote/blogbridge-backend/internal/platform/dbctx"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

type BlacklistedTokenRepo interface {
	Create(dbc dbctx.Context, tokens []*types.BlacklistedToken) ([]*types.BlacklistedToken, error)
	Exists(dbc dbctx.Context, token string) (bool, error)
	DeleteExpired(dbc dbctx.Context, before time.Time) (int64, error)
}

type blacklistedTokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBlacklistedTokenRepo(db *gorm.DB, baseLog *logger.Logger) BlacklistedTokenRepo {
	repoLog := baseLog.With("repo", "BlacklistedTokenRepo")
	return &blacklistedTokenRepo{db: db, log: repoLog}
}

func (r *blacklistedTokenRepo) Create(dbc dbctx.Context, tokens []*types.BlacklistedToken) ([]*types.BlacklistedToken, error) {
	if len(tokens) == 0 {
		return []*types.BlacklistedToken{}, nil
	}
	if err := dbc.Conn(r.db).Create(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *blacklistedTokenRepo) Exists(dbc dbctx.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	var count int64
	if err := dbc.Conn(r.db).
		Model(&types.BlacklistedToken{}).
		Where("token = ?", token).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteExpired removes entries whose token could no longer verify anyway.
func (r *blacklistedTokenRepo) DeleteExpired(dbc dbctx.Context, before time.Time) (int64, error) {
	res := dbc.Conn(r.db).
		Where("expires_at < ?", before).
		Delete(&types.BlacklistedToken{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
