package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"cryptobench/app"
	"cryptobench/domain/core"
	"cryptobench/domain/report"
	"cryptobench/domain/score"
)

type scoreRequest struct {
	GroundTruth score.GroundTruth `json:"ground_truth"`
	Response    score.Response    `json:"response"`
}

type aggregateRequest struct {
	Scores       []score.CaseScore `json:"scores"`
	SuccessFlags []bool            `json:"success_flags"`
}

func (a *App) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	cs, err := a.service.Engine().ScoreCase(req.GroundTruth, req.Response)
	if err != nil {
		// Contract violations mean the caller's ground truth references an
		// unknown vocabulary entry; surface them as client errors.
		if core.IsContractViolation(err) {
			a.writeError(w, http.StatusUnprocessableEntity, "ground truth rejected", err)
			return
		}
		a.writeError(w, http.StatusInternalServerError, "scoring failed", err)
		return
	}
	a.writeJSON(w, http.StatusOK, cs)
}

func (a *App) handleAggregate(w http.ResponseWriter, r *http.Request) {
	var req aggregateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	rep, err := report.Aggregate(req.Scores, req.SuccessFlags)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "aggregation rejected", err)
		return
	}
	a.writeJSON(w, http.StatusOK, rep)
}

func (a *App) handleRun(w http.ResponseWriter, r *http.Request) {
	var cases []app.Case
	if err := json.NewDecoder(r.Body).Decode(&cases); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := a.service.Run(r.Context(), cases)
	if err != nil {
		if core.IsContractViolation(err) {
			a.writeError(w, http.StatusUnprocessableEntity, "run rejected", err)
			return
		}
		a.writeError(w, http.StatusInternalServerError, "run failed", err)
		return
	}
	a.setLastRun(result)
	a.writeJSON(w, http.StatusOK, result)
}

func (a *App) handleTaxonomy(w http.ResponseWriter, r *http.Request) {
	names := a.reg.AllCanonicalNames()
	entries := make([]map[string]interface{}, 0, len(names))
	for _, name := range names {
		e := a.reg.Entry(name)
		entries = append(entries, map[string]interface{}{
			"canonical_name": e.CanonicalName,
			"aliases":        e.Aliases,
			"categories":     e.Categories,
			"domestic":       e.Domestic,
		})
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"taxonomy_hash": a.reg.Hash().String(),
		"algorithms":    entries,
	})
}

func (a *App) handleDomestic(w http.ResponseWriter, r *http.Request) {
	var domestic []string
	for _, name := range a.reg.AllCanonicalNames() {
		if a.reg.IsDomestic(name) {
			domestic = append(domestic, name)
		}
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{"domestic": domestic})
}

func (a *App) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if a.repo == nil {
		http.Error(w, "run storage not configured", http.StatusNotFound)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := a.repo.ListRuns(r.Context(), limit)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "failed to list runs", err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{"runs": runs})
}

func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	result := a.getLastRun()
	if result == nil {
		http.Error(w, "no run recorded yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(renderRunHTML(result))
}

// handleReportByID serves the in-memory run when the ID matches, otherwise
// falls back to stored runs. Stored runs keep only the aggregate report, so
// the rendered page has no per-case table for them.
func (a *App) handleReportByID(w http.ResponseWriter, r *http.Request) {
	runID, err := core.ParseRunID(chi.URLParam(r, "runID"))
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid run ID", err)
		return
	}

	if last := a.getLastRun(); last != nil && last.RunID == runID {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(renderRunHTML(last))
		return
	}

	if a.repo == nil {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}
	rep, err := a.repo.GetRunReport(r.Context(), runID)
	if err != nil {
		if core.IsNotFoundError(err) {
			http.Error(w, "run not found", http.StatusNotFound)
			return
		}
		a.writeError(w, http.StatusInternalServerError, "failed to load run", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(renderReportHTML(runID, rep))
}

func (a *App) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Error("failed to encode response: %v", err)
	}
}

func (a *App) writeError(w http.ResponseWriter, status int, message string, err error) {
	a.logger.Warn("%s: %v", message, err)
	a.writeJSON(w, status, map[string]string{
		"error":  message,
		"detail": err.Error(),
	})
}
