package api

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

//go:embed templates/upload.html
var templatesFS embed.FS

var formTemplate = template.Must(template.ParseFS(templatesFS, "templates/upload.html"))

type formData struct {
	Error string
}

func (s *Server) form(w http.ResponseWriter, r *http.Request) {
	if err := formTemplate.Execute(w, formData{}); err != nil {
		s.logger.Error("render upload form", "error", err)
	}
}

// process accepts one .xlsx upload, runs the pairing pipeline and
// streams the annotated workbook back as a download. Any failure
// re-renders the form with the error message; nothing partial is ever
// returned.
func (s *Server) process(w http.ResponseWriter, r *http.Request) {
	jobID := uuid.New()

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		s.formError(w, http.StatusBadRequest, "file too large or malformed upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.formError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		s.formError(w, http.StatusBadRequest, "please upload an .xlsx workbook")
		return
	}

	res, err := s.processor.Process(file)
	if err != nil {
		s.logger.Warn("processing failed", "job_id", jobID, "file", header.Filename, "error", err)
		s.formError(w, http.StatusUnprocessableEntity, fmt.Sprintf("processing failed: %v", err))
		return
	}

	s.logger.Info("upload processed",
		"job_id", jobID,
		"file", header.Filename,
		"rows", res.Rows,
		"matches", res.Matches,
	)

	w.Header().Set("X-Job-ID", jobID.String())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "processed_"+header.Filename))
	if _, err := w.Write(res.Output); err != nil {
		s.logger.Error("write response", "job_id", jobID, "error", err)
	}
}

func (s *Server) formError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	if err := formTemplate.Execute(w, formData{Error: msg}); err != nil {
		s.logger.Error("render upload form", "error", err)
	}
}
