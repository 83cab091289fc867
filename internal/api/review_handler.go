package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/phrazzld/srs-calc/internal/api/shared"
	"github.com/phrazzld/srs-calc/internal/codec"
	"github.com/phrazzld/srs-calc/internal/domain"
	"github.com/phrazzld/srs-calc/internal/domain/srs"
	"github.com/phrazzld/srs-calc/internal/platform/logger"
	"github.com/phrazzld/srs-calc/internal/redact"
)

// ReviewHandler handles review-calculation HTTP requests
type ReviewHandler struct {
	srsService srs.Service
	legacy     codec.Codec
	tag        codec.Codec
	logger     *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler. The registry must contain
// the built-in legacy and tag codecs.
func NewReviewHandler(
	srsService srs.Service,
	codecs *codec.Registry,
	log *slog.Logger,
) *ReviewHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReviewHandler")
	}

	legacy, err := codecs.Get("legacy")
	if err != nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("codec registry is missing the legacy codec")
	}
	tag, err := codecs.Get("tag")
	if err != nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("codec registry is missing the tag codec")
	}

	return &ReviewHandler{
		srsService: srsService,
		legacy:     legacy,
		tag:        tag,
		logger:     log.With(slog.String("component", "review_handler")),
	}
}

// Calculate handles POST /api/calculate requests.
// Input is JSON {"srs": "Fri, Apr 25 23.15/45.62", "signal": 1}; srs may be
// absent or null for a new item. Output is the plain-text tag form
// "[[date:YYYY-MM-DD]] F.FF/I.II".
func (h *ReviewHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CalculateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("validation error", slog.String("error", redact.Error(err)))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error", err)
		return
	}

	var srsField string
	if req.SRS != nil {
		srsField = *req.SRS
	}

	h.calculate(w, r, srsField, *req.Signal)
}

// CalculateFromQuery handles GET /api/calculate requests, the query-string
// variant of Calculate: /api/calculate?srs=...&signal=1. Same plain-text
// output.
func (h *ReviewHandler) CalculateFromQuery(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	rawSignal := r.URL.Query().Get("signal")
	if rawSignal == "" {
		log.Warn("signal query parameter missing")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Query parameter 'signal' is required")
		return
	}

	signal, err := strconv.Atoi(rawSignal)
	if err != nil {
		log.Warn("signal query parameter not an integer", slog.String("signal", rawSignal))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Signal must be an integer between 0 and 4")
		return
	}

	h.calculate(w, r, r.URL.Query().Get("srs"), signal)
}

// calculate is the shared body of the two plain-text calculate variants:
// parse or default the state, run the review, render the tag form.
func (h *ReviewHandler) calculate(
	w http.ResponseWriter,
	r *http.Request,
	srsField string,
	signal int,
) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	state := domain.NewItemState()
	if srsField != "" {
		var err error
		state, err = h.legacy.Parse(srsField)
		if err != nil {
			log.Warn("unparsable srs string", slog.String("error", redact.Error(err)))
			shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
			return
		}
	}

	result, err := h.srsService.Review(state, domain.Signal(signal))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("review calculated",
		slog.Int("signal", signal),
		slog.Float64("new_interval", result.State.Interval),
		slog.Float64("new_factor", result.State.Factor))

	shared.RespondWithText(w, r, http.StatusOK, h.tag.Format(result.NextReview, result.State))
}

// SubmitReview handles POST /api/reviews requests, the structured JSON
// variant. Absent interval/factor fields take the new-item defaults.
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("validation error", slog.String("error", redact.Error(err)))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation error", err)
		return
	}

	state := domain.NewItemState()
	if req.Interval != nil {
		state.Interval = *req.Interval
	}
	if req.Factor != nil {
		state.Factor = *req.Factor
	}

	result, err := h.srsService.Review(state, domain.Signal(*req.Signal))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	// The review ID only correlates this calculation in the logs; nothing is
	// stored under it.
	reviewID := uuid.New()

	response := ReviewResponse{
		ReviewID:       reviewID.String(),
		NextReviewDate: result.NextReview.Format("2006-01-02"),
		NewFactor:      result.State.Factor,
		NewInterval:    result.State.Interval,
	}

	log.Debug("review submitted",
		slog.String("review_id", reviewID.String()),
		slog.Int("signal", *req.Signal),
		slog.Float64("new_interval", result.State.Interval),
		slog.Float64("new_factor", result.State.Factor))

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
