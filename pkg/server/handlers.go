package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/honeybbq/autosview/pkg/ast/report"
	"github.com/honeybbq/autosview/pkg/autosview"
	"github.com/honeybbq/autosview/pkg/codec"
	"github.com/honeybbq/autosview/pkg/docerrors"
	"github.com/honeybbq/autosview/pkg/document"
	"github.com/honeybbq/autosview/pkg/logger"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// SectionResponse is the JSON form of a report.Section.
type SectionResponse struct {
	Title           string   `json:"title"`
	Body            []string `json:"body"`
	Emphasis        string   `json:"emphasis"`
	SeparatorBefore bool     `json:"separator_before"`
	Level           string   `json:"level"`
	Preformatted    bool     `json:"preformatted,omitempty"`
}

// SectionsResponse is the body of POST /sections.
type SectionsResponse struct {
	Kind     string            `json:"kind"`
	Sections []SectionResponse `json:"sections"`
}

// KindsResponse is the body of GET /kinds.
type KindsResponse struct {
	Kinds    []string           `json:"kinds"`
	Natureza []NaturezaResponse `json:"natureza"`
}

// NaturezaResponse describes a natureza code that selects a kind on its own.
type NaturezaResponse struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// requestID reuses the caller's X-Request-ID or generates one, echoes it in the response and
// stores it for both the logger package and chi's request logger.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), logger.RequestIDKey, id)
		ctx = context.WithValue(ctx, middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /kinds
func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	resp := KindsResponse{}
	for _, k := range s.backend.Kinds() {
		resp.Kinds = append(resp.Kinds, k.String())
	}
	for _, code := range document.MappedNaturezas() {
		resp.Natureza = append(resp.Natureza, NaturezaResponse{
			Code:        code,
			Description: document.NaturezaDescription(code),
			Kind:        document.KindFromNatureza(code).String(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// POST /render?format=&kind=&fallback_on_empty=
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	r, doc, opts, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	bundle, err := s.backend.Render(r.Context(), doc, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	logger.WithContext(r.Context()).Info("Document rendered",
		"report_kind", bundle.Metadata.Kind,
		"format", bundle.Metadata.Format,
		"sections", bundle.Metadata.Sections)

	w.Header().Set("Content-Type", bundle.ContentType)
	w.Header().Set("X-Autosview-Kind", bundle.Metadata.Kind)
	w.Header().Set("X-Autosview-Sections", strconv.Itoa(bundle.Metadata.Sections))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(bundle.Content)
}

// POST /sections?kind=&fallback_on_empty=
func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	r, doc, opts, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rep, err := s.backend.Sections(r.Context(), doc, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	logger.WithContext(r.Context()).Debug("Sections extracted",
		"report_kind", rep.Kind,
		"sections", len(rep.Sections))
	writeJSON(w, http.StatusOK, toSectionsResponse(rep))
}

// decodeRequest reads the document and options from r. The returned request carries the
// resolved kind under logger.KindKey for every later log line of the request.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (*http.Request, *document.Document, autosview.RenderOptions, error) {
	opts := s.opts.Defaults
	q := r.URL.Query()
	if format := q.Get("format"); format != "" {
		opts.Format = format
	}
	if raw := q.Get("fallback_on_empty"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return r, nil, opts, docerrors.New(docerrors.KindValidation, fmt.Errorf("fallback_on_empty: %w", err))
		}
		opts.FallbackOnEmpty = v
	}

	dec, err := codec.ForContentType(r.Header.Get("Content-Type"))
	if err != nil {
		return r, nil, opts, err
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	if err != nil {
		return r, nil, opts, err
	}
	tree, err := dec.Tree(body)
	if err != nil {
		return r, nil, opts, err
	}

	decodeOpts := autosview.DecodeOptions{Source: "request body"}
	if raw := q.Get("kind"); raw != "" {
		decodeOpts.Kind = document.ParseKind(raw)
	}
	doc, err := codec.FromTree(tree, decodeOpts)
	if err != nil {
		return r, nil, opts, err
	}
	r = r.WithContext(context.WithValue(r.Context(), logger.KindKey, doc.Kind.String()))
	return r, doc, opts, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	kind := docerrors.KindOf(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(r.Context()).Error("Render request failed", "error", err, "error_kind", string(kind))
	} else {
		logger.WithContext(r.Context()).Warn("Render request rejected", "error", err, "error_kind", string(kind))
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: string(kind)})
}

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return docerrors.KindOf(err).HTTPStatus()
}

func toSectionsResponse(rep *report.Report) SectionsResponse {
	resp := SectionsResponse{Kind: rep.Kind, Sections: make([]SectionResponse, 0, len(rep.Sections))}
	for _, sec := range rep.Sections {
		body := sec.Body
		if body == nil {
			body = []string{}
		}
		resp.Sections = append(resp.Sections, SectionResponse{
			Title:           sec.Title,
			Body:            body,
			Emphasis:        string(sec.Emphasis),
			SeparatorBefore: sec.SeparatorBefore,
			Level:           sec.Level.String(),
			Preformatted:    sec.Preformatted,
		})
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
