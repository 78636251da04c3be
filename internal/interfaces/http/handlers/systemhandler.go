package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	commondto "github.com/Harekrushna7138/ticket-service-backend/internal/application/common/dto"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/utils"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/version"
)

const healthPingTimeout = 2 * time.Second

// Banner is the plain-text index served at /.
const Banner = `Support Ticketing System Backend

Available endpoints:
- POST /register - Register new user
- POST /login - Login user
- GET /users - Get all users
- GET /tickets - Get all tickets
- POST /tickets - Create new ticket
- GET /tickets/{id} - Get ticket
- PUT /tickets/{id} - Update ticket
- DELETE /tickets/{id} - Delete ticket
- POST /tickets/{id}/comments - Add comment
- GET /tickets/{id}/comments - Get ticket comments
- GET /notifications - Get notifications
- PUT /notifications/{id}/read - Mark notification as read

Try visiting /health to test the API!
`

// Pinger checks that the store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type SystemHandler struct {
	db     Pinger
	driver string
	logger logger.Interface
}

func NewSystemHandler(db Pinger, driver string, logger logger.Interface) *SystemHandler {
	return &SystemHandler{
		db:     db,
		driver: driver,
		logger: logger,
	}
}

// Root handles GET /
// @Summary Service banner
// @Tags system
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, Banner)
}

// Health handles GET /health
// @Summary Liveness check
// @Description Reports ok when the process is up and the database answers a ping
// @Tags system
// @Produce json
// @Success 200 {object} utils.APIResponse{data=dto.SystemStatus}
// @Failure 503 {object} utils.APIResponse{data=dto.SystemStatus}
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	status := commondto.SystemStatus{
		Status:   commondto.StatusOK,
		Message:  "Support Ticketing System is running",
		Version:  version.String(),
		Database: "up",
		Driver:   h.driver,
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Warnw("health check database ping failed", "error", err)
			status.Status = commondto.StatusDegraded
			status.Database = "down"
			c.JSON(http.StatusServiceUnavailable, utils.APIResponse{
				Success: false,
				Data:    status,
				Error: &utils.ErrorInfo{
					Type:    "service_unavailable",
					Message: "Database is unreachable",
				},
			})
			return
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", status)
}
