package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harekrushna7138/ticket-service-backend/internal/application/notification/dto"
	"github.com/Harekrushna7138/ticket-service-backend/internal/application/notification/usecases"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/utils"
)

type NotificationHandler struct {
	listNotificationsUC usecases.ListNotificationsExecutor
	markAsReadUC        usecases.MarkNotificationAsReadExecutor
	logger              logger.Interface
}

func NewNotificationHandler(
	listNotificationsUC usecases.ListNotificationsExecutor,
	markAsReadUC usecases.MarkNotificationAsReadExecutor,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listNotificationsUC: listNotificationsUC,
		markAsReadUC:        markAsReadUC,
		logger:              logger,
	}
}

// ListNotifications handles GET /notifications
// @Summary List notifications
// @Description Newest first; user_id narrows the list to one recipient
// @Tags notifications
// @Produce json
// @Security Bearer
// @Param user_id query int false "Recipient user ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.NotificationDTO}
// @Failure 400 {object} utils.APIResponse
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, err := utils.ParseOptionalUintQuery(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listNotificationsUC.Execute(c.Request.Context(), dto.ListNotificationsRequest{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// MarkAsRead handles PUT /notifications/:id/read
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Security Bearer
// @Param id path int true "Notification ID"
// @Success 200 {object} utils.APIResponse{data=dto.NotificationDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markAsReadUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", result)
}
