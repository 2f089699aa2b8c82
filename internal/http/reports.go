package router

import (
	"fmt"
	"net/http"

	"github.com/freshbox-tech/Freshbox-admin/internal/middlewares"
	"github.com/freshbox-tech/Freshbox-admin/internal/models"
)

func GetSummary(w http.ResponseWriter, r *http.Request) {
	reportService := middlewares.GetServiceFromContext[models.ReportService](w, r, middlewares.ReportServiceKey)

	summary, err := (*reportService).Summary(r.Context())
	if err != nil {
		middlewares.EncodeJSONError(w, fmt.Sprintf("Error occurred during building summary: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	middlewares.EncodeJSONResponse(w, map[string]interface{}{
		"success": true,
		"summary": summary,
	}, http.StatusOK)
}
