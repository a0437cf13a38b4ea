package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/isdelr/phishstats/internal/metrics"
	"github.com/isdelr/phishstats/internal/services"
	"github.com/rs/zerolog/log"
)

// ReportHandler serves the analysis reports.
type ReportHandler struct {
	reports services.ReportServiceProvider
	audit   services.AuditServiceProvider
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports services.ReportServiceProvider, audit services.AuditServiceProvider) *ReportHandler {
	return &ReportHandler{reports: reports, audit: audit}
}

// serve times build under the report's name and writes its result.
func serve[T any](w http.ResponseWriter, r *http.Request, name string, build func(ctx context.Context) (T, error)) {
	start := time.Now()
	result, err := build(r.Context())
	metrics.ReportDurationSeconds.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		log.Error().Err(err).Str("report", name).Msg("Failed to build report")
		http.Error(w, "Failed to build "+name+" report: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Summary handles the request for the whole-population summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "summary", h.reports.Summary)
}

// Cohorts handles the request for the per-cohort phishing statistics.
func (h *ReportHandler) Cohorts(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "cohorts", h.reports.Cohorts)
}

// Intervals handles the request for the password-change interval report.
func (h *ReportHandler) Intervals(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "intervals", h.reports.Intervals)
}

// Critical handles the request for the users most likely to click. The top
// query parameter defaults to services.DefaultTopCritical.
func (h *ReportHandler) Critical(w http.ResponseWriter, r *http.Request) {
	top := services.DefaultTopCritical
	if s := r.URL.Query().Get("top"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid top parameter: must be a positive integer", http.StatusBadRequest)
			return
		}
		top = n
	}
	serve(w, r, "critical", func(ctx context.Context) (any, error) {
		return h.reports.Critical(ctx, top)
	})
}

// Weak handles the request for the weak password audit.
func (h *ReportHandler) Weak(w http.ResponseWriter, r *http.Request) {
	serve(w, r, "weak", h.audit.Report)
}
