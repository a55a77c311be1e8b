package server

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/homecook/cookbook/pkg/errors"
)

// handleImportCSV handles POST /api/v1/recipes/import. The body is the CSV
// file content, either raw (text/csv) or as a multipart "file" field.
func (s *Server) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	var reader = r.Body

	if strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			s.writeError(w, r, errors.NewBadRequestError("multipart upload must carry a file field"))
			return
		}
		defer file.Close()
		reader = file
	}

	result, err := s.transferService.ImportCSV(r.Context(), reader)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if result.Imported == 0 && result.Skipped > 0 {
		status = http.StatusUnprocessableEntity
	}

	s.writeJSON(w, status, APIResponse{Success: result.Imported > 0 || result.Skipped == 0, Data: result})
}

// handleExportCSV handles GET /api/v1/recipes/export
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="recipes.csv"`)

	if err := s.transferService.ExportCSV(r.Context(), w); err != nil {
		// Headers may already be out; log instead of rewriting the status
		s.logger.Error("CSV export failed", zap.Error(err))
	}
}

// handleImportTemplate handles GET /api/v1/recipes/import/template
func (s *Server) handleImportTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="recipes-template.csv"`)
	w.Write([]byte(s.transferService.Template()))
}
