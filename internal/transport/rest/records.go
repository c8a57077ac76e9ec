package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
	recordsvc "github.com/heartmarshall/studytrack-backend/internal/service/record"
)

type recordService interface {
	Create(ctx context.Context, input recordsvc.CreateRecordInput) (*recordsvc.CreateResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Record, error)
	List(ctx context.Context, input recordsvc.ListRecordsInput) (*recordsvc.ListResult, error)
	Update(ctx context.Context, input recordsvc.UpdateRecordInput) (*domain.Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context, input recordsvc.StatsInput) (*domain.RecordStats, error)
}

type leaderboardService interface {
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	MyScore(ctx context.Context) (*domain.Score, error)
}

// RecordHandler serves study records, statistics and the XP leaderboard.
type RecordHandler struct {
	records     recordService
	leaderboard leaderboardService
	log         *slog.Logger
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(records recordService, leaderboard leaderboardService, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		records:     records,
		leaderboard: leaderboard,
		log:         logger.With("handler", "records"),
	}
}

type recordRequest struct {
	Title           string  `json:"title"`
	Category        string  `json:"category"`
	DurationMinutes int     `json:"durationMinutes"`
	Memo            *string `json:"memo"`
	Date            string  `json:"date"`
}

// date parses the request date. An empty value is left zero so the service
// reports it as a missing field.
func (req recordRequest) date() (time.Time, error) {
	if req.Date == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return time.Time{}, domain.NewValidationError("date", "must be a YYYY-MM-DD date")
	}
	return d, nil
}

type createRecordResponse struct {
	Record   recordResponse `json:"record"`
	XPEarned int64          `json:"xpEarned"`
	Score    *scoreResponse `json:"score"`
}

type listRecordsResponse struct {
	Records []recordResponse `json:"records"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// List handles GET /api/records.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	var errs []domain.FieldError
	input := recordsvc.ListRecordsInput{
		From:     queryDate(r, "from", &errs),
		To:       queryDate(r, "to", &errs),
		Category: queryString(r, "category"),
		Limit:    queryInt(r, "limit", &errs),
		Offset:   queryInt(r, "offset", &errs),
	}
	if len(errs) > 0 {
		writeServiceError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	result, err := h.records.List(r.Context(), input)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	limit := input.Limit
	if limit == 0 {
		limit = recordsvc.DefaultListLimit
	}
	resp := listRecordsResponse{
		Records: make([]recordResponse, len(result.Records)),
		Total:   result.Total,
		Limit:   limit,
		Offset:  input.Offset,
	}
	for i := range result.Records {
		resp.Records[i] = toRecordResponse(&result.Records[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/records.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	date, err := req.date()
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	result, err := h.records.Create(r.Context(), recordsvc.CreateRecordInput{
		Title:           req.Title,
		Category:        req.Category,
		DurationMinutes: req.DurationMinutes,
		Memo:            req.Memo,
		Date:            date,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createRecordResponse{
		Record:   toRecordResponse(result.Record),
		XPEarned: result.XPEarned,
		Score:    toScoreResponse(result.Score),
	})
}

// Get handles GET /api/records/{id}.
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.recordID(w, r)
	if !ok {
		return
	}
	rec, err := h.records.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// Update handles PUT /api/records/{id}. The body replaces all editable fields.
func (h *RecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.recordID(w, r)
	if !ok {
		return
	}
	var req recordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	date, err := req.date()
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	rec, err := h.records.Update(r.Context(), recordsvc.UpdateRecordInput{
		ID:              id,
		Title:           req.Title,
		Category:        req.Category,
		DurationMinutes: req.DurationMinutes,
		Memo:            req.Memo,
		Date:            date,
	})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// Delete handles DELETE /api/records/{id}.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.recordID(w, r)
	if !ok {
		return
	}
	if err := h.records.Delete(r.Context(), id); err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/records/stats.
func (h *RecordHandler) Stats(w http.ResponseWriter, r *http.Request) {
	var errs []domain.FieldError
	days := queryInt(r, "days", &errs)
	if len(errs) > 0 {
		writeServiceError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	stats, err := h.records.Stats(r.Context(), recordsvc.StatsInput{Days: days})
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

// Leaderboard handles GET /api/records/leaderboard.
func (h *RecordHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	var errs []domain.FieldError
	limit := queryInt(r, "limit", &errs)
	if len(errs) > 0 {
		writeServiceError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	entries, err := h.leaderboard.Top(r.Context(), limit)
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}

	resp := make([]leaderboardEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = leaderboardEntryResponse{
			Rank:      e.Rank,
			UserID:    e.UserID.String(),
			Name:      e.Name,
			AvatarURL: e.AvatarURL,
			TotalXP:   e.TotalXP,
			Level:     e.Level,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Score handles GET /api/records/score.
func (h *RecordHandler) Score(w http.ResponseWriter, r *http.Request) {
	score, err := h.leaderboard.MyScore(r.Context())
	if err != nil {
		writeServiceError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toScoreResponse(score))
}

func (h *RecordHandler) recordID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid record id")
		return uuid.Nil, false
	}
	return id, true
}
