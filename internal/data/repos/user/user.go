package user

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/blogbridge-backend/internal/domain"
	"github.com/yungbote/blogbridge-backend/internal/platform/dbctx"
	"github.com/yungbote/blogbridge-backend/internal/platform/logger"
)

type UserRepo interface {
	Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error)
	GetActiveByEmail(dbc dbctx.Context, email string) (*types.User, error)
	GetActiveByID(dbc dbctx.Context, userID uint) (*types.User, error)
	EmailExists(dbc dbctx.Context, userEmail string) (bool, error)
	SetActive(dbc dbctx.Context, userID uint, active bool) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error) {
	if len(users) == 0 {
		return []*types.User{}, nil
	}
	if err := dbc.Conn(ur.db).Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetActiveByEmail returns nil, nil when no active user has the email.
func (ur *userRepo) GetActiveByEmail(dbc dbctx.Context, email string) (*types.User, error) {
	var u types.User
	err := dbc.Conn(ur.db).
		Where("email = ? AND is_active = ?", email, true).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetActiveByID returns nil, nil when the user is missing or deactivated.
func (ur *userRepo) GetActiveByID(dbc dbctx.Context, userID uint) (*types.User, error) {
	var u types.User
	err := dbc.Conn(ur.db).
		Where("id = ? AND is_active = ?", userID, true).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (ur *userRepo) EmailExists(dbc dbctx.Context, userEmail string) (bool, error) {
	var count int64
	if err := dbc.Conn(ur.db).
		Model(&types.User{}).
		Where("email = ?", userEmail).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ur *userRepo) SetActive(dbc dbctx.Context, userID uint, active bool) error {
	return dbc.Conn(ur.db).
		Model(&types.User{}).
		Where("id = ?", userID).
		Update("is_active", active).Error
}
