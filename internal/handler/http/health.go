package http

import (
	"net/http"

	"github.com/MKhiriev/stack-underflow/internal/app"
)

// health pings the storage and reports build metadata.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.services.AppInfoService.CheckHealth(ctx); err != nil {
		writeError(w, r, err, 0)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgOK, h.services.AppInfoService.GetBuildInfo(ctx))
}
