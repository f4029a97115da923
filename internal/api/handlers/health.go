package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck returns the health check endpoint. It reports 503 when the database does not answer.
//
//	@Summary		Health check
//	@Description	Check if the service and its database are up
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"API is healthy"
//	@Failure		503	{object}	map[string]string	"Database unavailable"
//	@Router			/health [get]
func HealthCheck(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	}
}
