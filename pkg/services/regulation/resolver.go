package regulation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pilotsmatch/escort-engine/pkg/metrics"
	"github.com/pilotsmatch/escort-engine/pkg/models/domain"
	"github.com/pilotsmatch/escort-engine/pkg/services/dimension"
)

// Axis defaults when a regulation record leaves a bound unspecified.
const (
	defaultLinearMax = 999
	defaultWeightMax = 999_999_999
)

// Resolver matches load specs against state escort regulations.
type Resolver struct {
	store *Store
	sink  *metrics.Sink
}

func NewResolver(store *Store, sink *metrics.Sink) *Resolver {
	return &Resolver{store: store, sink: sink}
}

// LoadSpecInput is a load spec as submitted by callers, with dimensions in
// their raw textual form.
type LoadSpecInput struct {
	Width    string
	Height   string
	Length   string
	Weight   string
	RoadType string
}

// ParseLoadSpec normalizes raw dimension inputs into a LoadSpec. A spec
// that cannot be parsed is an error, distinguishable from a legitimate
// "None Required" resolution.
func ParseLoadSpec(in LoadSpecInput) (domain.LoadSpec, error) {
	width, err := dimension.Parse(in.Width)
	if err != nil {
		return domain.LoadSpec{}, fmt.Errorf("load width: %w", err)
	}
	height, err := dimension.Parse(in.Height)
	if err != nil {
		return domain.LoadSpec{}, fmt.Errorf("load height: %w", err)
	}
	length, err := dimension.Parse(in.Length)
	if err != nil {
		return domain.LoadSpec{}, fmt.Errorf("load length: %w", err)
	}
	weight, err := dimension.Parse(in.Weight)
	if err != nil {
		return domain.LoadSpec{}, fmt.Errorf("load weight: %w", err)
	}

	roadType := domain.RoadType(in.RoadType)
	if in.RoadType == "" {
		roadType = domain.RoadTypeInterstate
	}

	return domain.LoadSpec{
		WidthFt:  width,
		HeightFt: height,
		LengthFt: length,
		WeightLb: weight,
		RoadType: roadType,
	}, nil
}

// Resolve produces one escort requirement result per requested state, in
// input order. A missing or unloadable dataset degrades to "no data"
// results rather than failing the route.
func (r *Resolver) Resolve(ctx context.Context, spec domain.LoadSpec, states []string) []domain.EscortRequirementResult {
	logger := zerolog.Ctx(ctx)

	regs, err := r.store.Regulations()
	if err != nil {
		logger.Error().Err(err).Msg("regulation dataset unavailable")
		regs = nil
	}

	results := make([]domain.EscortRequirementResult, 0, len(states))
	for _, state := range states {
		code := StateCode(state)

		stateRegs, ok := regs[code]
		if !ok {
			r.sink.RecordEscortResolution("no_data")
			results = append(results, domain.EscortRequirementResult{
				State:              state,
				RoadType:           spec.RoadType,
				EscortRequirements: domain.NoDataAvailable,
				Notes:              domain.NoRegulationsFound,
			})
			continue
		}

		requirements := matchEscorts(spec, stateRegs)
		r.sink.RecordEscortResolution(outcomeFor(requirements))

		results = append(results, domain.EscortRequirementResult{
			State:              state,
			RoadType:           spec.RoadType,
			EscortRequirements: requirements,
			Notes:              firstNotes(spec.RoadType, stateRegs),
		})
	}
	return results
}

func outcomeFor(requirements string) string {
	if requirements == domain.NoneRequired {
		return "none_required"
	}
	return "required"
}

// matchEscorts evaluates each record's four dimension axes independently
// and accumulates the required escort types, de-duplicated in insertion
// order.
func matchEscorts(spec domain.LoadSpec, stateRegs []domain.RegulationRecord) string {
	var out []byte
	seen := make(map[string]struct{})

	add := func(escorts string) {
		if escorts == "" {
			return
		}
		if _, ok := seen[escorts]; ok {
			return
		}
		seen[escorts] = struct{}{}
		if len(out) > 0 {
			out = append(out, ", "...)
		}
		out = append(out, escorts...)
	}

	for _, reg := range stateRegs {
		if reg.RoadType != spec.RoadType {
			continue
		}

		if matchLinearAxis(spec.WidthFt, reg.WidthMin, reg.WidthMax) {
			add(reg.WidthEscorts)
		}
		if matchLinearAxis(spec.HeightFt, reg.HeightMin, reg.HeightMax) {
			add(reg.HeightEscorts)
		}
		if matchLinearAxis(spec.LengthFt, reg.LengthMin, reg.LengthMax) {
			add(reg.LengthEscorts)
		}
		if matchWeightAxis(spec.WeightLb, string(reg.WeightMin), string(reg.WeightMax)) {
			add(reg.WeightEscorts)
		}
	}

	if len(out) == 0 {
		return domain.NoneRequired
	}
	return string(out)
}

// matchLinearAxis reports whether a load value falls within a record's
// [min, max] bounds, both inclusive. An axis with neither bound present
// never matches; an unparsable bound disables the axis for that record.
func matchLinearAxis(value float64, minStr, maxStr string) bool {
	if minStr == "" && maxStr == "" {
		return false
	}

	axisMin, err := dimension.Parse(minStr)
	if err != nil {
		return false
	}

	axisMax := float64(defaultLinearMax)
	if maxStr != "" {
		axisMax, err = dimension.Parse(maxStr)
		if err != nil {
			return false
		}
	}

	return axisMin <= value && value <= axisMax
}

func matchWeightAxis(value float64, minStr, maxStr string) bool {
	if minStr == "" && maxStr == "" {
		return false
	}

	axisMin := 0.0
	if minStr != "" {
		v, err := dimension.Parse(minStr)
		if err != nil {
			return false
		}
		axisMin = v
	}

	axisMax := float64(defaultWeightMax)
	if maxStr != "" {
		v, err := dimension.Parse(maxStr)
		if err != nil {
			return false
		}
		axisMax = v
	}

	return axisMin <= value && value <= axisMax
}

// firstNotes returns the notes of the first record matching the road type
// that carries a non-empty notes field.
func firstNotes(roadType domain.RoadType, stateRegs []domain.RegulationRecord) string {
	for _, reg := range stateRegs {
		if reg.RoadType == roadType && reg.Notes != "" {
			return reg.Notes
		}
	}
	return ""
}
