package http

import (
	"net/http"

	"github.com/jaekwang-park/auth-api/internal/http/handler"
	"github.com/jaekwang-park/auth-api/internal/service"
)

func NewRouter(authSvc *service.AuthService) http.Handler {
	mux := http.NewServeMux()

	// Health check - intentionally outside /api/v1 for ALB health check compatibility
	mux.Handle("/health", handler.NewHealthHandler())

	authHandler := handler.NewAuthHandler(authSvc)
	mux.Handle("/api/v1/auth/", authHandler)

	return mux
}
