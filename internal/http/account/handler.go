package account

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/export"
	"github.com/MrJamesThe3rd/tally/internal/importer"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/report"
)

const maxUploadSize = 10 << 20

var errGoalModes = fmt.Errorf("%w: target_date and target_months are mutually exclusive", ledger.ErrValidation)

type Handler struct {
	svc       *account.Service
	importSvc *importer.Service
	formatter report.Formatter
	now       func() time.Time
}

func NewHandler(svc *account.Service, importSvc *importer.Service, formatter report.Formatter) *Handler {
	return &Handler{
		svc:       svc,
		importSvc: importSvc,
		formatter: formatter,
		now:       time.Now,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.register)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Get("/entries", h.listEntries)
		r.Post("/entries", h.addEntry)
		r.Delete("/entries/{index}", h.removeEntry)
		r.Put("/budget", h.setBudget)
		r.Put("/goal", h.setGoal)
		r.Get("/summary", h.summary)
		r.Get("/breakdown", h.breakdown)
		r.Get("/months", h.months)
		r.Get("/statement", h.statement)
		r.Post("/import", h.importStatement)
	})
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body: %w", ledger.ErrValidation, err)
	}

	return nil
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	acc, err := h.svc.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(acc))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	acc, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(acc))
}

// entryFilters reads the list filters from the query string.
func entryFilters(r *http.Request) ([]report.Predicate, error) {
	q := r.URL.Query()

	var preds []report.Predicate

	if s := q.Get("category"); s != "" {
		preds = append(preds, report.ByCategory(s))
	}

	if s := q.Get("type"); s != "" {
		t, err := ledger.ParseType(s)
		if err != nil {
			return nil, err
		}

		preds = append(preds, report.ByType(t))
	}

	var start, end time.Time

	if s := q.Get("start_date"); s != "" {
		t, err := ledger.ParseDate(s)
		if err != nil {
			return nil, err
		}

		start = t
	}

	if s := q.Get("end_date"); s != "" {
		t, err := ledger.ParseDate(s)
		if err != nil {
			return nil, err
		}

		end = t
	}

	if !start.IsZero() || !end.IsZero() {
		preds = append(preds, report.ByDateRange(start, end))
	}

	if s := q.Get("month"); s != "" {
		m, err := report.ParseMonth(s)
		if err != nil {
			return nil, err
		}

		preds = append(preds, report.ByMonth(m))
	}

	return preds, nil
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	preds, err := entryFilters(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	acc, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries := acc.Entries()

	resp := make([]entryResponse, 0, len(entries))
	for i, e := range entries {
		if report.Match(e, preds...) {
			resp = append(resp, toEntryResponse(i, e))
		}
	}

	slices.SortStableFunc(resp, func(a, b entryResponse) int {
		return report.NewestFirst(entries[a.Index], entries[b.Index])
	})

	writeJSON(w, http.StatusOK, resp)
}

type addEntryRequest struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Label  string `json:"label"`
	Date   string `json:"date"`
}

func (req addEntryRequest) params() (account.EntryParams, error) {
	typ, err := ledger.ParseType(req.Type)
	if err != nil {
		return account.EntryParams{}, err
	}

	amount, err := ledger.ParseAmount(req.Amount)
	if err != nil {
		return account.EntryParams{}, err
	}

	params := account.EntryParams{Type: typ, Name: req.Name, Amount: amount, Label: req.Label}

	if req.Date != "" {
		if params.Date, err = ledger.ParseDate(req.Date); err != nil {
			return account.EntryParams{}, err
		}
	}

	return params, nil
}

func (h *Handler) addEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	params, err := req.params()
	if err != nil {
		writeError(w, r, err)
		return
	}

	e, index, err := h.svc.AddEntry(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(index, e))
}

func (h *Handler) removeEntry(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, r, ledger.ErrIndexOutOfRange)
		return
	}

	if _, err := h.svc.RemoveEntry(r.Context(), chi.URLParam(r, "id"), index); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type budgetRequest struct {
	Budget string `json:"budget"`
}

func (h *Handler) setBudget(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	budget, err := ledger.ParseNonNegative(req.Budget)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.svc.SetMonthlyBudget(r.Context(), chi.URLParam(r, "id"), budget); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type goalRequest struct {
	Goal         string `json:"goal"`
	TargetDate   string `json:"target_date,omitempty"`
	TargetMonths int    `json:"target_months,omitempty"`
}

func (req goalRequest) horizon() (ledger.Horizon, error) {
	switch {
	case req.TargetDate != "" && req.TargetMonths != 0:
		return ledger.Horizon{}, errGoalModes
	case req.TargetDate != "":
		d, err := ledger.ParseDate(req.TargetDate)
		if err != nil {
			return ledger.Horizon{}, err
		}

		return ledger.ByDate(d)
	case req.TargetMonths != 0:
		return ledger.ByMonths(req.TargetMonths)
	}

	return ledger.NoHorizon(), nil
}

func (h *Handler) setGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	goal, err := ledger.ParseNonNegative(req.Goal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	horizon, err := req.horizon()
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.svc.SetSavingsGoal(r.Context(), chi.URLParam(r, "id"), goal, horizon); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summarize(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(s))
}

func (h *Handler) breakdown(w http.ResponseWriter, r *http.Request) {
	var preds []report.Predicate

	if s := r.URL.Query().Get("month"); s != "" {
		m, err := report.ParseMonth(s)
		if err != nil {
			writeError(w, r, err)
			return
		}

		preds = append(preds, report.ByMonth(m))
	}

	acc, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	totals := report.SortedBreakdown(report.Filter(acc.Entries(), preds...))

	writeJSON(w, http.StatusOK, toCategoryResponses(totals))
}

func (h *Handler) months(w http.ResponseWriter, r *http.Request) {
	acc, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	months := report.AvailableMonths(acc.Entries())

	resp := make([]string, 0, len(months))
	for _, m := range months {
		resp = append(resp, m.String())
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) statement(w http.ResponseWriter, r *http.Request) {
	month := report.MonthOf(h.now())

	if s := r.URL.Query().Get("month"); s != "" {
		m, err := report.ParseMonth(s)
		if err != nil {
			writeError(w, r, err)
			return
		}

		month = m
	}

	acc, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if strings.EqualFold(r.URL.Query().Get("format"), "csv") {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", acc.Username()+"-"+month.String()+".csv"))

		if err := export.WriteCSV(w, report.FilterByMonth(acc.Entries(), month)); err != nil {
			writeError(w, r, err)
		}

		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(export.Statement(acc.Entries(), month, h.formatter)))
}

func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
	bank, err := importer.ParseBank(r.URL.Query().Get("bank"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	labels := importer.Labels{
		Category: r.FormValue("category"),
		Source:   r.FormValue("source"),
	}

	entries, err := h.importSvc.Import(bank, file, labels)
	if err != nil {
		writeError(w, r, err)
		return
	}

	added, err := h.svc.Import(r.Context(), chi.URLParam(r, "id"), entries)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, importResponse{
		Parsed:   len(entries),
		Imported: added,
		Skipped:  len(entries) - added,
	})
}
