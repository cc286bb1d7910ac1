package quote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/pilotsmatch/escort-engine/pkg/models/api"
	"github.com/pilotsmatch/escort-engine/pkg/models/domain"
	"github.com/pilotsmatch/escort-engine/pkg/services/dimension"
	quotesvc "github.com/pilotsmatch/escort-engine/pkg/services/quote"
	"github.com/pilotsmatch/escort-engine/pkg/services/regulation"
	"github.com/pilotsmatch/escort-engine/pkg/store/rates"
)

type Handler struct {
	calculator *quotesvc.Calculator
	resolver   *regulation.Resolver
	rates      *rates.Store
}

func NewHandler(calculator *quotesvc.Calculator, resolver *regulation.Resolver, rateStore *rates.Store) *Handler {
	return &Handler{
		calculator: calculator,
		resolver:   resolver,
		rates:      rateStore,
	}
}

func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.CarTypes) == 0 {
		writeError(w, http.StatusBadRequest, "car_types must be non-empty")
		return
	}

	carTypes := make([]domain.CarType, 0, len(req.CarTypes))
	for _, ct := range req.CarTypes {
		carTypes = append(carTypes, domain.CarType(ct))
	}

	result, err := h.calculator.Calculate(ctx, domain.QuoteRequest{
		PickupLocation:   req.PickupLocation,
		PickupState:      req.PickupState,
		DeliveryLocation: req.DeliveryLocation,
		DeliveryState:    req.DeliveryState,
		PickupDate:       req.PickupDate,
		PickupTime:       req.PickupTime,
		CarTypes:         carTypes,
		IsSuperload:      req.IsSuperload,
	})
	if err != nil {
		var qe *quotesvc.Error
		if errors.As(err, &qe) {
			writeError(w, http.StatusUnprocessableEntity, qe.Reason)
			return
		}
		logger.Error().Err(err).Msg("quote calculation failed")
		writeError(w, http.StatusInternalServerError, "quote calculation failed")
		return
	}

	writeJSON(ctx, w, http.StatusOK, quoteResponse(result))
}

func (h *Handler) ResolveEscorts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.EscortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.States) == 0 {
		writeError(w, http.StatusBadRequest, "states must be non-empty")
		return
	}

	spec, err := regulation.ParseLoadSpec(regulation.LoadSpecInput{
		Width:    req.Width,
		Height:   req.Height,
		Length:   req.Length,
		Weight:   req.Weight,
		RoadType: req.RoadType,
	})
	if err != nil {
		var fe *dimension.FormatError
		if errors.As(err, &fe) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	results := h.resolver.Resolve(ctx, spec, req.States)

	resp := api.EscortResponse{Results: make([]api.EscortRequirement, 0, len(results))}
	for _, res := range results {
		resp.Results = append(resp.Results, api.EscortRequirement{
			State:              res.State,
			RoadType:           string(res.RoadType),
			EscortRequirements: res.EscortRequirements,
			Notes:              res.Notes,
		})
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}

func (h *Handler) GetRegion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state := chi.URLParam(r, "state")

	region := h.rates.RegionFor(state)
	table := h.rates.RatesFor(region)

	resp := api.RegionResponse{
		State:  state,
		Region: string(region),
		Rates:  make(map[string]api.RateCard, len(table)),
	}
	for carType, card := range table {
		resp.Rates[string(carType)] = api.RateCard{
			StandardMile: card.StandardMile,
			PremiumMile:  card.PremiumMile,
			StandardDay:  card.StandardDay,
			PremiumDay:   card.PremiumDay,
		}
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}

func quoteResponse(result *domain.QuoteResult) api.QuoteResponse {
	breakdown := make(map[string]api.CarTypeQuote, len(result.Breakdown))
	for carType, car := range result.Breakdown {
		days := make([]api.DailyLineItem, 0, len(car.Days))
		for _, d := range car.Days {
			days = append(days, api.DailyLineItem{
				Day:          d.Day,
				Miles:        d.Miles,
				MileageCost:  d.MileageCost,
				DayRate:      d.DayRate,
				DailyCost:    d.DailyCost,
				OvernightFee: d.OvernightFee,
			})
		}
		breakdown[string(carType)] = api.CarTypeQuote{
			Total:          car.Total,
			DailyBreakdown: days,
			MileRate:       car.MileRate,
			DayRate:        car.DayRate,
		}
	}

	return api.QuoteResponse{
		ID:        result.ID,
		Distance:  result.DistanceMiles,
		RateTier:  string(result.RateTier),
		Region:    string(result.Region),
		TripDays:  result.TripDays,
		TotalCost: result.TotalCost,
		Breakdown: breakdown,
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: msg})
}
