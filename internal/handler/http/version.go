package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
	Date    string `json:"buildDate"`
	Commit  string `json:"buildCommit"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, versionResponse{
		Version: info.BuildVersion(),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}, http.StatusOK)
}
