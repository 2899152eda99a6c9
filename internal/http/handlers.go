package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"spendtrack/internal/core"
	"spendtrack/internal/engine"
	applog "spendtrack/internal/log"
)

type expenseDTO struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category"`
	AmountCents int64  `json:"amount_cents"`
	Date        string `json:"date"`
	Note        string `json:"note,omitempty"`
}

type summaryDTO struct {
	Scope          string           `json:"scope"`
	TotalCents     int64            `json:"total_cents"`
	Count          int              `json:"count"`
	ByCategory     map[string]int64 `json:"by_category"`
	TopCategory    string           `json:"top_category,omitempty"`
	TopAmountCents int64            `json:"top_amount_cents"`
	ActiveDays     int              `json:"active_days"`
	AverageCents   int64            `json:"average_cents"`
}

type trendPointDTO struct {
	Month      string `json:"month"`
	TotalCents int64  `json:"total_cents"`
	Percent    int    `json:"percent"`
}

type errorDTO struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// scopeParam normalizes the scope query value; empty means everything.
func scopeParam(r *http.Request) string {
	scope := strings.TrimSpace(r.URL.Query().Get("scope"))
	if scope == "" {
		return engine.ScopeAll
	}
	return scope
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateExpense(w, r)
	case http.MethodGet:
		s.handleListExpenses(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeJSON(w, http.StatusMethodNotAllowed, errorDTO{Error: "method not allowed"})
	}
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		slog.ErrorContext(r.Context(), "Parse body error",
			applog.FieldError, err,
			applog.FieldPath, r.URL.Path)
		writeJSON(w, http.StatusBadRequest, errorDTO{Error: "malformed request body"})
		return
	}

	exp, err := core.NewExpense(
		parser.Get("description"),
		parser.Get("category"),
		parser.Get("amount"),
		parser.Get("date"),
		parser.Get("note"),
	)
	if err != nil {
		// Validation rejection: no record is created, the form layer
		// decides how to surface the reason.
		writeJSON(w, http.StatusUnprocessableEntity, errorDTO{Error: err.Error()})
		return
	}

	id, err := s.records.Add(r.Context(), exp)
	if err != nil {
		slog.ErrorContext(r.Context(), "Expense add error",
			applog.FieldError, err,
			applog.FieldExpenseDesc, exp.Description,
			applog.FieldAmountCents, exp.Amount.Cents)
		writeJSON(w, http.StatusInternalServerError, errorDTO{Error: "failed to record expense"})
		return
	}

	// Every accepted add invalidates every cached derived view.
	s.summaryCache.Purge()
	s.listCache.Purge()

	if s.events != nil {
		if err := s.events.PublishExpenseRecorded(r.Context(), exp); err != nil {
			slog.ErrorContext(r.Context(), "Failed to publish expense recorded event",
				applog.FieldError, err,
				applog.FieldExpenseID, id)
			// The record is stored; the archive stream is best-effort
		}
	}

	slog.InfoContext(r.Context(), "Expense recorded",
		applog.FieldExpenseID, id,
		applog.FieldExpenseDesc, exp.Description,
		applog.FieldCategory, string(exp.Category),
		applog.FieldAmountCents, exp.Amount.Cents)

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	scope := scopeParam(r)

	if cached, ok := s.listCache.Get(scope); ok {
		slog.DebugContext(r.Context(), "Expense list cache hit", applog.FieldScope, scope)
		writeJSON(w, http.StatusOK, cached)
		return
	}

	records, err := s.records.All(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Store snapshot error", applog.FieldError, err)
		writeJSON(w, http.StatusInternalServerError, errorDTO{Error: "failed to load expenses"})
		return
	}

	selected := engine.Select(records, scope)
	out := make([]expenseDTO, 0, len(selected))
	for _, e := range selected {
		out = append(out, expenseDTO{
			ID:          e.ID,
			Description: e.Description,
			Category:    string(e.Category),
			AmountCents: e.Amount.Cents,
			Date:        e.Date.String(),
			Note:        e.Note,
		})
	}

	s.listCache.Set(scope, out)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMonths(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeJSON(w, http.StatusMethodNotAllowed, errorDTO{Error: "method not allowed"})
		return
	}

	records, err := s.records.All(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Store snapshot error", applog.FieldError, err)
		writeJSON(w, http.StatusInternalServerError, errorDTO{Error: "failed to load expenses"})
		return
	}

	writeJSON(w, http.StatusOK, engine.MonthsPresent(records))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeJSON(w, http.StatusMethodNotAllowed, errorDTO{Error: "method not allowed"})
		return
	}

	scope := scopeParam(r)

	summary, ok := s.summaryCache.Get(scope)
	if ok {
		slog.DebugContext(r.Context(), "Summary cache hit", applog.FieldScope, scope)
	} else {
		records, err := s.records.All(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "Store snapshot error", applog.FieldError, err)
			writeJSON(w, http.StatusInternalServerError, errorDTO{Error: "failed to load expenses"})
			return
		}
		summary = engine.Summarize(engine.Select(records, scope))
		s.summaryCache.Set(scope, summary)
	}

	dto := summaryDTO{
		Scope:          scope,
		TotalCents:     summary.Total.Cents,
		Count:          summary.Count,
		ByCategory:     make(map[string]int64, len(summary.ByCategory)),
		TopCategory:    string(summary.TopCategory),
		TopAmountCents: summary.TopAmount.Cents,
		ActiveDays:     summary.ActiveDays,
		AverageCents:   summary.Average.Cents,
	}
	for cat, sum := range summary.ByCategory {
		dto.ByCategory[string(cat)] = sum.Cents
	}

	writeJSON(w, http.StatusOK, dto)
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeJSON(w, http.StatusMethodNotAllowed, errorDTO{Error: "method not allowed"})
		return
	}

	limit := s.trendMonths
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := s.records.All(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Store snapshot error", applog.FieldError, err)
		writeJSON(w, http.StatusInternalServerError, errorDTO{Error: "failed to load expenses"})
		return
	}

	// The trend always covers the full store, independent of any scope.
	points := engine.MonthlyTrend(records, limit)
	out := make([]trendPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, trendPointDTO{Month: p.Month, TotalCents: p.Total.Cents, Percent: p.Percent})
	}

	writeJSON(w, http.StatusOK, out)
}
