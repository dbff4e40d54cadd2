package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/alexiusacademia/gobrace/internal/brace"
	"github.com/alexiusacademia/gobrace/internal/catalog"
	"github.com/alexiusacademia/gobrace/internal/check"
	"github.com/alexiusacademia/gobrace/internal/diagram"
	"github.com/alexiusacademia/gobrace/internal/logger"
	"github.com/alexiusacademia/gobrace/internal/report"
	"github.com/alexiusacademia/gobrace/internal/unit"
	"github.com/alexiusacademia/gobrace/internal/value"
)

// Handler serves the brace API.
type Handler struct {
	designer *brace.Designer
	log      *logger.Logger
}

func NewHandler(d *brace.Designer, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{designer: d, log: log}
}

type nameRequest struct {
	Name string `json:"name"`
}

type boltsRequest struct {
	Material string `json:"material"`
	Diameter string `json:"diameter"`
	Rows     int    `json:"rows"`
}

type gussetRequest struct {
	ThicknessMm float64 `json:"thickness_mm"`
	LgMm        float64 `json:"lg_mm"`
	Material    string  `json:"material"`
}

type forceRequest struct {
	KN float64 `json:"kn"`
}

// lengthResponse is a single length in the requested unit.
type lengthResponse struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type thicknessResponse struct {
	Section float64 `json:"section"`
	Gusset  float64 `json:"gusset"`
	Unit    string  `json:"unit"`
}

type boltDimensionsResponse struct {
	brace.BoltDimensions
	Unit string `json:"unit"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.designer.ListSections())
}

func (h *Handler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.designer.ListMaterials())
}

func (h *Handler) ListBoltDiameters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.designer.ListBoltDiameters())
}

func (h *Handler) ListBoltMaterials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.designer.ListBoltMaterials())
}

func (h *Handler) GetBrace(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.designer.Snapshot())
}

func (h *Handler) PutSection(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.designer.SetSection(req.Name); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.designer.Snapshot())
}

func (h *Handler) PutMaterial(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.designer.SetMaterial(req.Name); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.designer.Snapshot())
}

func (h *Handler) PutBolts(w http.ResponseWriter, r *http.Request) {
	var req boltsRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.designer.SetBolts(req.Material, req.Diameter, req.Rows); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.designer.Snapshot())
}

func (h *Handler) PutGusset(w http.ResponseWriter, r *http.Request) {
	var req gussetRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.designer.SetGusset(req.ThicknessMm, req.LgMm, req.Material); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.designer.Snapshot())
}

func (h *Handler) PutForce(w http.ResponseWriter, r *http.Request) {
	var req forceRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.designer.SetForce(req.KN)
	writeJSON(w, http.StatusOK, h.designer.Snapshot())
}

func (h *Handler) SectionGeometry(w http.ResponseWriter, r *http.Request) {
	u, ok := h.lengthUnit(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.designer.SectionOutline(u))
}

func (h *Handler) GussetGeometry(w http.ResponseWriter, r *http.Request) {
	u, ok := h.lengthUnit(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.designer.GussetOutline(u))
}

func (h *Handler) BoltGeometry(w http.ResponseWriter, r *http.Request) {
	u, ok := h.lengthUnit(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.designer.BoltCoordinates(u))
}

func (h *Handler) JointLength(w http.ResponseWriter, r *http.Request) {
	u, ok := h.lengthUnit(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, lengthResponse{Value: h.designer.JointLength(u), Unit: u.String()})
}

func (h *Handler) BoltDimensions(w http.ResponseWriter, r *http.Request) {
	u, ok := h.lengthUnit(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, boltDimensionsResponse{
		BoltDimensions: h.designer.BoltDimensions(u),
		Unit:           u.String(),
	})
}

func (h *Handler) Thickness(w http.ResponseWriter, r *http.Request) {
	u, ok := h.lengthUnit(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, thicknessResponse{
		Section: h.designer.SectionThickness(u),
		Gusset:  h.designer.GussetThickness(u),
		Unit:    u.String(),
	})
}

func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	if err := diagram.WriteJointDiagram(w, h.designer.Preview(), "png"); err != nil {
		h.log.Error("render preview", "error", err)
	}
}

func (h *Handler) CheckBaseYield(w http.ResponseWriter, r *http.Request) {
	res, err := h.designer.CalculateBaseYield(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) CheckBoltYield(w http.ResponseWriter, r *http.Request) {
	res, err := h.designer.CalculateBoltYield(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) CheckGussetYield(w http.ResponseWriter, r *http.Request) {
	res, err := h.designer.CalculateGussetYield(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) CheckAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.designer.CheckAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) LastResult(w http.ResponseWriter, r *http.Request) {
	res := h.designer.LastResult()
	if res == nil {
		h.writeError(w, r, report.ErrNoResult)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) LastResultPDF(w http.ResponseWriter, r *http.Request) {
	h.writeReport(w, r, "application/pdf", "pdf", report.WritePDF)
}

func (h *Handler) LastResultXLSX(w http.ResponseWriter, r *http.Request) {
	h.writeReport(w, r,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"xlsx", report.WriteXLSX)
}

func (h *Handler) writeReport(w http.ResponseWriter, r *http.Request, contentType, ext string, write func(io.Writer, *report.Report) error) {
	rep, err := report.Build(h.designer.LastResult())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rep.Mark+"."+ext))
	if err := write(w, rep); err != nil {
		h.log.Error("write report", "format", ext, "error", err)
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}

// lengthUnit reads ?unit=, defaulting to meters.
func (h *Handler) lengthUnit(w http.ResponseWriter, r *http.Request) (unit.LengthUnit, bool) {
	s := r.URL.Query().Get("unit")
	if s == "" {
		return unit.Meter, true
	}
	u, err := unit.ParseLengthUnit(s)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid unit", err.Error())
		return unit.Meter, false
	}
	return u, true
}

// writeError maps domain errors to HTTP status codes.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, value.ErrInvalidQuantity), errors.Is(err, unit.ErrUnknownUnit):
		writeError(w, http.StatusBadRequest, "invalid input", err.Error())
	case errors.Is(err, catalog.ErrUnsupportedConfiguration):
		writeError(w, http.StatusUnprocessableEntity, "unsupported configuration", err.Error())
	case errors.Is(err, check.ErrIncomplete):
		writeError(w, http.StatusConflict, "incomplete joint", err.Error())
	case errors.Is(err, report.ErrNoResult):
		writeError(w, http.StatusNotFound, "no result", err.Error())
	default:
		h.log.Error("request failed", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	resp := map[string]string{"error": msg}
	if details != "" {
		resp["details"] = details
	}
	writeJSON(w, status, resp)
}
