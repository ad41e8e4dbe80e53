package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var DefaultAllowedOrigins = []string{
	"http://localhost:80",
	"http://localhost:3000",
	"http://localhost:5174",
	"http://localhost:5173",
	"http://127.0.0.1:80",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5174",
	"http://127.0.0.1:5173",
}

func CORS(allowedOrigins []string) gin.HandlerFunc {
	if len(allowedOrigins) == 0 {
		allowedOrigins = DefaultAllowedOrigins
	}
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Request-Id"},
		ExposeHeaders:    []string{"X-Request-Id", "X-Trace-Id"},
		AllowCredentials: true,
	})
}
