package quotes

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftsorted/shiftsorted-backend/internal/estimate"
	"github.com/shiftsorted/shiftsorted-backend/internal/pricing"
	"github.com/shiftsorted/shiftsorted-backend/pkg/config"
	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
	"github.com/shiftsorted/shiftsorted-backend/pkg/logger"
	"github.com/shiftsorted/shiftsorted-backend/pkg/metrics"
	"github.com/shiftsorted/shiftsorted-backend/pkg/types"
)

// CompanyDirectory loads the companies eligible to quote a pickup area.
type CompanyDirectory interface {
	CompaniesServing(ctx context.Context, pincodePrefix string) ([]pricing.CompanyInput, error)
}

// Service exposes the quote search operation.
type Service interface {
	Search(ctx context.Context, input SearchInput) (*SearchResult, error)
}

// SearchInput is a validated-at-the-edge search request.
type SearchInput struct {
	Spec pricing.MoveSpecification
	Sort enums.SortOrder
}

// SearchResult carries everything the comparison page renders.
type SearchResult struct {
	Request pricing.PricingRequest `json:"request"`
	Volumes estimate.Volumes       `json:"volumes"`
	Quotes  []pricing.Quote        `json:"quotes"`
	Summary Summary                `json:"summary"`
}

type service struct {
	directory  CompanyDirectory
	policy     pricing.Policy
	perSpaceM3 float64
	metrics    *metrics.PipelineMetrics
	logg       *logger.Logger
}

// NewService constructs the quote search service.
func NewService(directory CompanyDirectory, cfg config.PricingConfig, m *metrics.PipelineMetrics, logg *logger.Logger) (Service, error) {
	if directory == nil {
		return nil, fmt.Errorf("company directory required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		directory: directory,
		policy: pricing.Policy{
			VanCapacityM3:        cfg.VanCapacityM3,
			PackingRatePerM3:     cfg.PackingRate(),
			DismantlingRatePerM3: cfg.DismantlingRate(),
			ReassemblyRatePerM3:  cfg.ReassemblyRate(),
		},
		perSpaceM3: cfg.AdditionalSpaceVolumeM3,
		metrics:    m,
		logg:       logg,
	}, nil
}

// Search prices the specification against every eligible company and
// returns the ranked result set.
func (s *service) Search(ctx context.Context, input SearchInput) (*SearchResult, error) {
	if err := validateSpec(input.Spec); err != nil {
		return nil, err
	}

	sortOrder := input.Sort
	if !sortOrder.IsValid() {
		sortOrder = enums.SortOrderLowToHigh
	}

	started := time.Now()
	spec := input.Spec

	volumes := estimate.VolumesWithFallback(
		spec.Items, spec.Dismantle, spec.Reassemble,
		spec.PropertySize(), len(spec.AdditionalSpaces), s.perSpaceM3,
	)
	request := pricing.BuildPricingRequest(spec, volumes)

	prefix := types.OutwardCode(spec.PickupPincode)
	companies, err := s.directory.CompaniesServing(ctx, prefix)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading companies for quote search")
	}

	quotes := make([]pricing.Quote, 0, len(companies))
	for _, company := range companies {
		quotes = append(quotes, pricing.ComputeQuote(request, company, s.policy))
	}
	ranked := Rank(quotes, sortOrder)

	s.metrics.ObserveSearchDuration(sortOrder.String(), time.Since(started))
	s.metrics.AddQuotesComputed(len(ranked))

	logCtx := s.logg.WithFields(ctx, map[string]any{
		"pincode_prefix": prefix,
		"companies":      len(companies),
		"total_volume":   volumes.TotalVolumeM3,
		"sort":           sortOrder.String(),
	})
	s.logg.Info(logCtx, "quote search completed")

	return &SearchResult{
		Request: request,
		Volumes: volumes,
		Quotes:  ranked,
		Summary: Summarize(ranked),
	}, nil
}

func validateSpec(spec pricing.MoveSpecification) error {
	if types.OutwardCode(spec.PickupPincode) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "pickup pincode is required")
	}
	if !spec.PropertyType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid property_type %q", spec.PropertyType))
	}

	if sizes := pricing.ValidSizesFor(spec.PropertyType); sizes != nil {
		answer := spec.PropertySize()
		if answer == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s is required", pricing.SizeFieldFor(spec.PropertyType)))
		}
		if !containsString(sizes, answer) {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid %s %q", pricing.SizeFieldFor(spec.PropertyType), answer))
		}
	}

	for _, assessment := range []struct {
		label string
		value pricing.AccessAssessment
	}{
		{"collection", spec.Collection},
		{"delivery", spec.Delivery},
	} {
		if v := assessment.value.ParkingDistance; v != "" && !v.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid %s parking_distance %q", assessment.label, v))
		}
		if v := assessment.value.InternalAccess; v != "" && !v.IsValidFor(spec.PropertyType) {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid %s internal_access %q for property_type %q", assessment.label, v, spec.PropertyType))
		}
	}

	if v := spec.MoveDate.NoticePeriod; v != "" && !v.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid notice_period %q", v))
	}
	if v := spec.MoveDate.MoveDay; v != "" && !v.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid move_day %q", v))
	}
	if v := spec.MoveDate.CollectionTime; v != "" && !v.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid collection_time %q", v))
	}
	if v := spec.Quantity; v != "" && !v.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid quantity %q", v))
	}
	for _, space := range spec.AdditionalSpaces {
		if !space.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid additional_space %q", space))
		}
	}
	if spec.DistanceMiles != nil && *spec.DistanceMiles < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "distance_miles cannot be negative")
	}
	return nil
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
