package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"aquagest/internal/core/apperror"
	"aquagest/internal/domain/state"
	"aquagest/internal/infrastructure/persist"
)

// maxBackupSize bounds an uploaded backup document.
const maxBackupSize = 32 << 20 // 32MB

// BackupHandler serves the full-snapshot read, export and restore.
type BackupHandler struct {
	*BaseHandler
	store   *state.Store
	gateway *persist.Gateway
	sync    *persist.SyncIndicator
}

// NewBackupHandler creates a backup handler.
func NewBackupHandler(base *BaseHandler, store *state.Store, gateway *persist.Gateway, sync *persist.SyncIndicator) *BackupHandler {
	return &BackupHandler{BaseHandler: base, store: store, gateway: gateway, sync: sync}
}

// Snapshot returns the entire current state in one document.
// GET /state
func (h *BackupHandler) Snapshot(c *gin.Context) {
	h.OK(c, h.store.Snapshot())
}

// SyncStatus reports the cosmetic persistence indicator.
// GET /state/sync
func (h *BackupHandler) SyncStatus(c *gin.Context) {
	syncing := false
	failed := false
	if h.sync != nil {
		syncing = h.sync.Syncing()
		failed = h.sync.Failed()
	}
	h.OK(c, gin.H{
		"syncing": syncing,
		"failed":  failed,
	})
}

// Export downloads the current state as a dated backup file.
// GET /backup/export
func (h *BackupHandler) Export(c *gin.Context) {
	name, data, err := h.gateway.Export(c.Request.Context(), h.store.Snapshot())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/json", data)
}

// Restore replaces the entire state from an uploaded backup. Rejected
// documents leave the state untouched.
// POST /backup/restore
func (h *BackupHandler) Restore(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupSize))
	if err != nil {
		h.Error(c, apperror.NewValidation("unreadable request body").WithCause(err))
		return
	}

	snap, err := h.gateway.Restore(c.Request.Context(), h.store, data)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, snap)
}
