package webhook

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"moments_pipeline/internal/domain"
	"moments_pipeline/internal/metrics"
	"moments_pipeline/internal/service"
)

const (
	publicMomentsLimit   = 25
	defaultAnalyticsDays = 7
)

// Intake consumes normalized channel events.
type Intake interface {
	HandleInbound(ctx context.Context, ev domain.ChannelEvent) (*domain.InboundMessage, error)
}

// MomentReader serves the public read side.
type MomentReader interface {
	ListBroadcasted(ctx context.Context, region, category string, limit int) ([]domain.Moment, error)
}

// Analytics serves the rollup and counter endpoints.
type Analytics interface {
	Summarize(ctx context.Context, windowDays int) (*domain.Analytics, error)
	Stats(ctx context.Context) (*service.PublicStats, error)
}

type Handler struct {
	intake      Intake
	moments     MomentReader
	analytics   Analytics
	verifyToken string
	logger      *slog.Logger
}

func NewHandler(intake Intake, moments MomentReader, analytics Analytics, verifyToken string, logger *slog.Logger) *Handler {
	return &Handler{
		intake:      intake,
		moments:     moments,
		analytics:   analytics,
		verifyToken: verifyToken,
		logger:      logger.With("component", "webhook"),
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/webhook", h.Verify)
	r.Post("/webhook", h.Receive)
	r.Get("/moments", h.ListMoments)
	r.Get("/stats", h.Stats)
	r.Get("/analytics", h.Analytics)
	r.Get("/healthz", h.Health)
	r.Handle("/metrics", metrics.Handler())

	return r
}

// Verify answers the channel's subscription handshake.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("hub.mode")
	token := r.URL.Query().Get("hub.verify_token")
	challenge := r.URL.Query().Get("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		h.logger.Info("webhook verified")
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(challenge))
		return
	}

	h.logger.Warn("webhook verification failed", "mode", mode)
	writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
}

// Receive handles message delivery. Recognized-but-empty payload shapes get
// a 200 so the channel does not retry them; only genuinely malformed input
// is rejected. One bad message never fails the batch.
func (h *Handler) Receive(w http.ResponseWriter, r *http.Request) {
	var payload Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return
	}

	if len(payload.Entry) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"status": "no_entry"})
		return
	}

	var hasChanges bool
	var messages []Message
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			hasChanges = true
			messages = append(messages, change.Value.Messages...)
		}
	}

	if !hasChanges {
		writeJSON(w, http.StatusOK, map[string]string{"status": "no_changes"})
		return
	}
	if len(messages) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"status": "no_messages"})
		return
	}

	for _, msg := range messages {
		if _, err := h.intake.HandleInbound(r.Context(), msg.ToChannelEvent()); err != nil {
			h.logger.Error("message processing failed",
				"channel_id", msg.ID,
				"error", err,
			)
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "processed"})
}

func (h *Handler) ListMoments(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	category := r.URL.Query().Get("category")

	moments, err := h.moments.ListBroadcasted(r.Context(), region, category, publicMomentsLimit)
	if err != nil {
		h.logger.Error("failed to list moments", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"moments": moments})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analytics.Stats(r.Context())
	if err != nil {
		h.logger.Error("failed to compute stats", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	days := defaultAnalyticsDays
	if raw := r.URL.Query().Get("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid window"})
			return
		}
		days = parsed
	}

	analytics, err := h.analytics.Summarize(r.Context(), days)
	if err != nil {
		h.logger.Error("failed to summarize broadcasts", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
