package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/blogbridge-backend/internal/domain"
)

func SeedUser(tb testing.TB, conn *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		Email:          email,
		HashedPassword: "not-a-real-hash",
		FirstName:      "Test",
		LastName:       "User",
		IsActive:       true,
	}
	if err := conn.WithContext(context.Background()).Create(u).Error; err != nil {
		tb.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

// SeedBlogs inserts n blogs for owner whose updated_at increases with the index.
func SeedBlogs(tb testing.TB, conn *gorm.DB, owner *types.User, titlePrefix string, n int) []*types.Blog {
	tb.Helper()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]*types.Blog, 0, n)
	for i := 0; i < n; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		b := &types.Blog{
			UserID:    owner.ID,
			Title:     fmt.Sprintf("%s %02d", titlePrefix, i),
			Content:   fmt.Sprintf("content %d", i),
			IsActive:  true,
			CreatedAt: ts,
			UpdatedAt: ts,
		}
		if err := conn.WithContext(context.Background()).Create(b).Error; err != nil {
			tb.Fatalf("seed blog %d: %v", i, err)
		}
		out = append(out, b)
	}
	return out
}
