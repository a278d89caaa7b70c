// Package httpapi serves the room catalog and the signed-in guest's bookings over HTTP.
package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tyemirov/tauth/pkg/sessionvalidator"
)

// NewSessionValidator builds the TAuth cookie validator described by cfg.
func NewSessionValidator(cfg Config) (*sessionvalidator.Validator, error) {
	validator, err := sessionvalidator.New(sessionvalidator.Config{
		SigningKey: []byte(cfg.SessionSigningKey),
		Issuer:     cfg.SessionIssuer,
		CookieName: cfg.SessionCookieName,
	})
	if err != nil {
		return nil, fmt.Errorf("session validator: %w", err)
	}
	return validator, nil
}

// NewRouter wires public catalog routes and session-protected booking routes.
func NewRouter(cfg Config, handler *Handler, validator *sessionvalidator.Validator) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Origin", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.GET("/rooms", handler.handleListRooms)
	api.GET("/rooms/:id", handler.handleGetRoom)
	api.GET("/rooms/:id/unavailable", handler.handleUnavailableRanges)
	api.GET("/rooms/:id/quote", handler.handleQuote)

	session := api.Group("")
	session.Use(validator.GinMiddleware(claimsContextKey))
	session.GET("/session", handler.handleSession)
	session.GET("/bookings", handler.handleListBookings)
	session.POST("/bookings", handler.handleCreateBooking)
	session.GET("/bookings/:id/refund", handler.handlePreviewRefund)
	session.POST("/bookings/:id/cancel", handler.handleCancelBooking)

	return router
}
