package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akronstore/akron_api/internal/service"
	"github.com/akronstore/akron_api/internal/utils"
)

// BackupHandler handles the admin bulk export and bulk wipe endpoints.
type BackupHandler struct {
	backupService *service.BackupService
}

// NewBackupHandler constructs a BackupHandler.
func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export handles GET /v1/admin/export. The document is offered as a file
// download; there is no matching import endpoint.
func (h *BackupHandler) Export(c *gin.Context) {
	backup, err := h.backupService.Export(c.Request.Context(), time.Now())
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to export data")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.ExportFileName))
	c.IndentedJSON(200, backup)
}

// Wipe handles DELETE /v1/admin/data?confirm=true. Declining the
// confirmation leaves everything unchanged.
func (h *BackupHandler) Wipe(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"

	if err := h.backupService.Wipe(c.Request.Context(), confirmed); err != nil {
		if errors.Is(err, utils.ErrConfirmationRequired) {
			utils.Error(c, 409, "CONFIRMATION_REQUIRED", "Pass confirm=true to wipe all data")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to wipe data")
		return
	}
	utils.Success(c, 200, "All data cleared", nil)
}
