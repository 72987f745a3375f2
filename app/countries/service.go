package countries

import (
	"context"
	"strings"

	"github.com/joefazee/travelsheet/models"
)

// service implements the Service interface
type service struct {
	repo      Repository
	projector *Projector
}

// NewService creates a new country service
func NewService(repo Repository) Service {
	return &service{
		repo:      repo,
		projector: NewProjector(repo),
	}
}

// ListCountries returns the projection of the catalog for criteria
func (s *service) ListCountries(_ context.Context, criteria Criteria, favorites Favorites) ([]CountryResponse, error) {
	return ToCountryResponseList(s.projector.Project(criteria, favorites)), nil
}

// GetCountry returns a country by code
func (s *service) GetCountry(_ context.Context, code string) (*CountryDetailResponse, error) {
	country, err := s.lookup(code)
	if err != nil {
		return nil, err
	}
	return ToCountryDetailResponse(country), nil
}

// GetNeighbors returns the records before and after code in the full sorted
// catalog, wrapping around at both ends
func (s *service) GetNeighbors(_ context.Context, code string) (*NeighborsResponse, error) {
	country, err := s.lookup(code)
	if err != nil {
		return nil, err
	}

	prevCode, nextCode, ok := Neighbors(s.repo.SortedCodes(), country.Code)
	if !ok {
		return nil, models.ErrRecordNotFound
	}
	prev, _ := s.repo.Lookup(prevCode)
	next, _ := s.repo.Lookup(nextCode)
	if prev == nil || next == nil {
		return nil, models.ErrRecordNotFound
	}

	return &NeighborsResponse{
		Current:  ToCountryResponse(country),
		Previous: ToCountryResponse(prev),
		Next:     ToCountryResponse(next),
	}, nil
}

// GetAliases returns the search aliases registered for code
func (s *service) GetAliases(_ context.Context, code string) ([]string, error) {
	country, err := s.lookup(code)
	if err != nil {
		return nil, err
	}
	return AliasesFor(country.Code), nil
}

func (s *service) lookup(code string) (*models.Country, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !models.IsCountryCode(code) {
		return nil, models.ErrInvalidCountryCode
	}
	if !s.repo.Loaded() {
		return nil, models.ErrCatalogNotLoaded
	}
	country, ok := s.repo.Lookup(code)
	if !ok {
		return nil, models.ErrRecordNotFound
	}
	return country, nil
}

// Neighbors finds the codes around code in sorted, wrapping around.
func Neighbors(sorted []string, code string) (prev, next string, ok bool) {
	for i, c := range sorted {
		if c != code {
			continue
		}
		n := len(sorted)
		return sorted[(i-1+n)%n], sorted[(i+1)%n], true
	}
	return "", "", false
}
