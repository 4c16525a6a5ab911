package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/logger"
)

type HealthHandler struct {
	db    *database.PostgresDB
	cache cache.Cache
}

func NewHealthHandler(db *database.PostgresDB, c cache.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: c}
}

// Health handles GET /api/v1/health. Pure liveness, touches nothing.
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// dbStatusError is the diagnostics failure shape: what broke, the raw
// driver message, and what to check first.
type dbStatusError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Details     string   `json:"details"`
	Hint        string   `json:"hint"`
	Suggestions []string `json:"suggestions"`
}

// DBStatus handles GET /api/v1/db-status. Observational only: pings
// the pool, reports its stats and counts project rows as a
// table-reachability probe.
func (h *HealthHandler) DBStatus(c *gin.Context) {
	ctx := c.Request.Context()
	started := time.Now()

	if err := h.db.Ping(ctx); err != nil {
		logger.Error("db-status ping failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"connected": false,
			"error": dbStatusError{
				Code:    "DB_UNREACHABLE",
				Message: "database connection failed",
				Details: err.Error(),
				Hint:    "verify the database is running and the connection settings match",
				Suggestions: []string{
					"check that PostgreSQL is accepting connections on the configured host and port",
					"verify DB_USER and DB_PASSWORD",
					"confirm DB_NAME exists",
				},
			},
		})
		return
	}

	var projectsCount int64
	err := h.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM projects").Scan(&projectsCount)
	if err != nil {
		logger.Error("db-status projects probe failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"connected": true,
			"error": dbStatusError{
				Code:    "DB_SCHEMA_ERROR",
				Message: "connected but the projects table is not readable",
				Details: err.Error(),
				Hint:    "the schema may not be migrated",
				Suggestions: []string{
					"run the database migrations",
					"check that the configured user has SELECT on the projects table",
				},
			},
		})
		return
	}

	poolStats, err := h.db.Stats()
	if err != nil {
		logger.Error("db-status pool stats unavailable", err)
	}

	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			cacheStatus = "unreachable"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"connected":      true,
		"latency_ms":     time.Since(started).Milliseconds(),
		"pool":           poolStats,
		"projects_count": projectsCount,
		"cache":          cacheStatus,
	})
}
