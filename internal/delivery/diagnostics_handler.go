package delivery

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"katana_store/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const diagnosticsTimeout = 5 * time.Second

// DiagnosticsHandler reports liveness and database reachability. Every
// failure ends up inside the 200 payload, never as an error response.
type DiagnosticsHandler struct {
	db  *mongo.Database
	cfg *config.Config
	log *logrus.Logger
}

func NewDiagnosticsHandler(db *mongo.Database, cfg *config.Config, logger *logrus.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		db:  db,
		cfg: cfg,
		log: logger,
	}
}

func (h *DiagnosticsHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.Root)
	router.GET("/test", h.TestDatabase)
}

func (h *DiagnosticsHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Katana Store Backend is running"})
}

func (h *DiagnosticsHandler) TestDatabase(c *gin.Context) {
	status := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.cfg.DatabaseURL != "" {
		status["database_url"] = "✅ Set"
	}
	if h.cfg.DatabaseName != "" {
		status["database_name"] = "✅ Set"
	}

	if h.db != nil {
		status["database"] = "✅ Available"
		status["connection_status"] = "Connected"

		ctx, cancel := context.WithTimeout(c.Request.Context(), diagnosticsTimeout)
		defer cancel()

		collections, err := h.db.ListCollectionNames(ctx, bson.M{})
		if err != nil {
			h.log.Warnf("Diagnostics: failed to list collections: %v", err)
			status["database"] = fmt.Sprintf("⚠️  Connected but Error: %.50s", err.Error())
		} else {
			if len(collections) > 10 {
				collections = collections[:10]
			}
			status["collections"] = collections
			status["database"] = "✅ Connected & Working"
		}
	}

	c.JSON(http.StatusOK, status)
}
