package domain

import (
	"github.com/yungbote/blogbridge-backend/internal/domain/auth"
	"github.com/yungbote/blogbridge-backend/internal/domain/blog"
	"github.com/yungbote/blogbridge-backend/internal/domain/user"
)

type User = user.User
type PublicUser = user.Public
type BlacklistedToken = auth.BlacklistedToken
type Blog = blog.Blog
type BlogListFilter = blog.ListFilter
type BlogPage = blog.Page

// Models lists every persisted type in migration order.
func Models() []interface{} {
	return []interface{}{
		&user.User{},
		&blog.Blog{},
		&auth.BlacklistedToken{},
	}
}
