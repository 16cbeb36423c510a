package server

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/schemabridge-labs/schemabridge/internal/extract"
	"github.com/schemabridge-labs/schemabridge/internal/match"
	"github.com/schemabridge-labs/schemabridge/internal/schema"
)

//go:embed index.html
var indexHTML []byte

// MatchRequest is the body of POST /api/match. Each field is a
// comma-delimited list of column names.
type MatchRequest struct {
	SchemaA string `json:"schema_a"`
	SchemaB string `json:"schema_b"`
}

// UploadResponse is the body of POST /api/match/upload: the two inferred
// schemas plus the match result between them.
type UploadResponse struct {
	SchemaA schema.Schema `json:"schema_a"`
	SchemaB schema.Schema `json:"schema_b"`
	Result  match.Result  `json:"result"`
}

// Index serves the upload and compare form.
func (s *Server) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// Health is the liveness probe.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	s.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

// MatchLists matches two comma-delimited column lists.
func (s *Server) MatchLists(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.error(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	result := match.Schemas(schema.FromList(req.SchemaA), schema.FromList(req.SchemaB))
	s.json(w, http.StatusOK, result)
}

// MatchUploads matches the header schemas of two uploaded files. Form fields
// file_a and file_b carry the sources; format_a and format_b optionally
// override the format inferred from each file name.
func (s *Server) MatchUploads(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		s.error(w, http.StatusBadRequest, fmt.Errorf("parse upload: %w", err))
		return
	}

	schemaA, err := s.uploadSchema(r, "file_a", "format_a")
	if err != nil {
		s.error(w, http.StatusBadRequest, err)
		return
	}
	schemaB, err := s.uploadSchema(r, "file_b", "format_b")
	if err != nil {
		s.error(w, http.StatusBadRequest, err)
		return
	}

	s.json(w, http.StatusOK, UploadResponse{
		SchemaA: schemaA,
		SchemaB: schemaB,
		Result:  match.Schemas(schemaA, schemaB),
	})
}

// uploadSchema reads one uploaded file and infers its normalized schema.
// Content that fails to parse degrades to an empty schema; transport-level
// problems (missing part, unknown format, undecodable bytes) are errors and
// fail the request.
func (s *Server) uploadSchema(r *http.Request, fileField, formatField string) (schema.Schema, error) {
	f, header, err := r.FormFile(fileField)
	if err != nil {
		return nil, fmt.Errorf("missing upload %q: %w", fileField, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload %q: %w", fileField, err)
	}

	name := header.Filename
	if v := r.FormValue(formatField); v != "" {
		name = v
	}
	format, err := extract.DetectFormat(name)
	if err != nil {
		return nil, err
	}

	if !format.Binary() {
		if data, err = extract.DecodeText(data); err != nil {
			return nil, fmt.Errorf("upload %q: %w", fileField, err)
		}
	}

	fields, err := extract.FieldNames(data, format)
	if err != nil {
		s.logger.Warn("schema extraction failed, using empty schema",
			"field", fileField, "file", header.Filename, "format", format, "error", err)
		return schema.Schema{}, nil
	}
	return schema.FromFields(fields), nil
}

func (s *Server) json(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) error(w http.ResponseWriter, status int, err error) {
	s.json(w, status, map[string]string{"error": err.Error()})
}
