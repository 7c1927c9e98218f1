package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"spellingtrainer/internal/service"
)

// BackupHandler downloads and restores word store backups
type BackupHandler struct {
	backup        *service.BackupService
	uploadMaxSize int64
	logger        *zap.Logger
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backup *service.BackupService, uploadMaxSize int64, logger *zap.Logger) *BackupHandler {
	return &BackupHandler{backup: backup, uploadMaxSize: uploadMaxSize, logger: logger}
}

// Export streams a backup file
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("spellingtrainer-backup-%s.json", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.backup.ExportToWriter(r.Context(), w); err != nil {
		// headers are already sent
		h.logger.Error("Failed to export backup", zap.Error(err))
	}
}

// Import restores a backup posted as the request body.
// ?replace=true overwrites the store instead of merging.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	replace, _ := strconv.ParseBool(r.URL.Query().Get("replace"))
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxSize)

	result, err := h.backup.ImportFromReader(r.Context(), r.Body, replace)
	if err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, "Invalid backup file", "Failed to import backup", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
