package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/itchan-dev/forumapi/internal/logger"
	"github.com/itchan-dev/forumapi/internal/utils"
)

// Health returns 200 while storage answers a ping, 503 otherwise.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Log.Warn("health check failed", "error", err)
		utils.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
