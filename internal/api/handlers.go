package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gehtsoft-usa/go_shotcalc"
	"github.com/gehtsoft-usa/go_shotcalc/bmath/unit"
	"github.com/gehtsoft-usa/go_shotcalc/internal/chart"
	"github.com/gehtsoft-usa/go_shotcalc/internal/input"
	"github.com/gehtsoft-usa/go_shotcalc/internal/metrics"
	"github.com/gehtsoft-usa/go_shotcalc/internal/report"
	"github.com/gehtsoft-usa/go_shotcalc/internal/scenario"
	"github.com/gehtsoft-usa/go_shotcalc/internal/storage"
)

const (
	maxRequestBytes = 64 << 10
	runSource       = "api"
)

type handlers struct {
	logger       *slog.Logger
	store        RunStore
	historyLimit int
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type shotRequest struct {
	scenario scenario.Scenario
	settings input.Settings
	result   go_shotcalc.TrajectoryResult
	runID    uint
}

// calculate decodes the scenario from the request body, runs the calculation
// and records it. An empty body calculates the default settings. On failure
// the error response is written and false is returned.
func (h *handlers) calculate(w http.ResponseWriter, r *http.Request) (shotRequest, bool) {
	var req shotRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req.scenario); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return req, false
	}

	req.settings = input.New()
	if err := req.scenario.Apply(&req.settings); err != nil {
		var fe *input.FieldError
		if errors.As(err, &fe) {
			metrics.IncValidationError(fe.Field)
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":  fe.Error(),
				"field":  fe.Field,
				"reason": fe.Reason,
			})
			return req, false
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return req, false
	}

	start := time.Now()
	result, err := req.settings.Simulate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	req.result = result
	metrics.ObserveSimulation(runSource, time.Since(start), result.EffectiveRange())

	if h.store != nil {
		run, err := h.store.SaveRun(storage.NewRun(runSource, req.settings, result))
		if err != nil {
			h.logger.Warn("failed to save run", "component", "api", "error", err)
		} else {
			req.runID = run.ID
		}
	}
	return req, true
}

type trajectoryResponse struct {
	Name            string            `json:"name,omitempty"`
	Settings        map[string]string `json:"settings"`
	Weight          float64           `json:"weight"`
	MinimumVelocity float64           `json:"minimum_velocity"`
	EffectiveRange  int               `json:"effective_range"`
	SampleCount     int               `json:"sample_count"`
	Samples         []report.Row      `json:"samples"`
	RunID           uint              `json:"run_id,omitempty"`
}

func settingsValues(s input.Settings) map[string]string {
	values := make(map[string]string)
	for _, field := range input.Fields() {
		values[field] = s.Value(field)
	}
	return values
}

// trajectory handles POST /api/v1/trajectory?schedule=all|display|export
func (h *handlers) trajectory(w http.ResponseWriter, r *http.Request) {
	schedule := r.URL.Query().Get("schedule")
	switch schedule {
	case "", "all", "display", "export":
	default:
		writeError(w, http.StatusBadRequest, "invalid schedule parameter, must be all, display or export")
		return
	}

	req, ok := h.calculate(w, r)
	if !ok {
		return
	}

	var rows []report.Row
	switch schedule {
	case "display":
		rows = report.Rows(req.result, report.DisplayYards(req.result))
	case "export":
		rows = report.Rows(req.result, report.ExportYards(req.result))
	default:
		samples := req.result.Samples()
		rows = make([]report.Row, len(samples))
		for i, d := range samples {
			rows[i] = report.NewRow(d)
		}
	}

	writeJSON(w, http.StatusOK, trajectoryResponse{
		Name:            req.scenario.Name,
		Settings:        settingsValues(req.settings),
		Weight:          req.result.PelletWeight().In(unit.WeightGrain),
		MinimumVelocity: req.result.MinimumVelocity().In(unit.VelocityFPS),
		EffectiveRange:  req.result.EffectiveRange(),
		SampleCount:     req.result.Len(),
		Samples:         rows,
		RunID:           req.runID,
	})
}

// export handles POST /api/v1/trajectory/export
func (h *handlers) export(w http.ResponseWriter, r *http.Request) {
	req, ok := h.calculate(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteTSV(&buf, req.result); err != nil {
		h.logger.Error("failed to write export", "component", "api", "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	name := report.FileName(req.settings.Diameter(), req.result.PelletWeight(),
		req.settings.MuzzleVelocity(), req.settings.Crosswind()) + report.Extension
	w.Header().Set("Content-Type", "text/tab-separated-values")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// chart handles POST /api/v1/trajectory/chart?title=...
func (h *handlers) chart(w http.ResponseWriter, r *http.Request) {
	req, ok := h.calculate(w, r)
	if !ok {
		return
	}

	title := r.URL.Query().Get("title")
	if title == "" {
		title = req.scenario.Title(req.settings)
	}

	var buf bytes.Buffer
	if err := chart.RenderPNG(&buf, req.result, title); err != nil {
		if errors.Is(err, chart.ErrNoData) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Error("failed to render chart", "component", "api", "error", err)
		writeError(w, http.StatusInternalServerError, "chart rendering failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// runs handles GET /api/v1/runs?limit=N
func (h *handlers) runs(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusNotFound, "run history is disabled")
		return
	}

	limit := h.historyLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > h.historyLimit {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit parameter, must be 1-%d", h.historyLimit))
			return
		}
		limit = n
	}

	runs, err := h.store.RecentRuns(limit)
	if err != nil {
		h.logger.Error("failed to read runs", "component", "api", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read run history")
		return
	}
	if runs == nil {
		runs = []storage.Run{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

// run handles GET /api/v1/runs/{id}
func (h *handlers) run(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusNotFound, "run history is disabled")
		return
	}

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		writeError(w, http.StatusBadRequest, "invalid run id")
		return
	}

	run, err := h.store.GetRun(uint(id))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to read run", "component", "api", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to read run")
		return
	}
	writeJSON(w, http.StatusOK, run)
}
