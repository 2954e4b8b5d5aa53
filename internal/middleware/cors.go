package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"ukkm-backend/internal/config"
)

func NewCORS(cfg *config.Config) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CorsAllowedOrigins,
		AllowedMethods:   cfg.Server.CorsAllowedMethods,
		AllowedHeaders:   cfg.Server.CorsAllowedHeaders,
		AllowCredentials: true,
		// report downloads read their file name from this header
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300, // 5 minutes
	})

	return c.Handler
}
