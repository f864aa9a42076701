package handlers

import (
	"net/http"

	"humanize-backend/internal/models"
	"humanize-backend/internal/styles"
)

// ListStyles returns the selectable rewrite styles in table order.
func ListStyles(w http.ResponseWriter, r *http.Request) {
	all := styles.All()
	resp := models.StylesResponse{Styles: make([]models.StyleInfo, 0, len(all))}
	for _, s := range all {
		resp.Styles = append(resp.Styles, models.StyleInfo{Key: string(s), Default: s == styles.Default})
	}
	writeJSON(w, http.StatusOK, resp)
}
