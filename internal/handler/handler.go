package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tealedge/portal/internal/config"
	"github.com/tealedge/portal/internal/logger"
	"github.com/tealedge/portal/internal/service"
)

type Handler struct {
	portal *service.Portal
	cfg    *config.Config
}

func New(portal *service.Portal, cfg *config.Config) *Handler {
	return &Handler{portal: portal, cfg: cfg}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
