package catalog

import (
	"context"
	"strings"

	"github.com/MohamedSultan7/davinci-bakers/pkg/logger"
	"github.com/MohamedSultan7/davinci-bakers/pkg/pagination"
	"github.com/MohamedSultan7/davinci-bakers/pkg/types"
	"github.com/google/uuid"
)

// Service exposes read access to the product catalog.
type Service interface {
	List(ctx context.Context, filters Filters) (*types.Paginated[Product], error)
	Get(ctx context.Context, id uuid.UUID) (*Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
}

type service struct {
	repo *Repository
	logg *logger.Logger
}

// NewService wires the catalog service. Panics on nil dependencies so wiring
// mistakes surface at boot instead of on the first request.
func NewService(repo *Repository, logg *logger.Logger) Service {
	if repo == nil {
		panic("catalog: repo is required")
	}
	if logg == nil {
		panic("catalog: logger is required")
	}
	return &service{repo: repo, logg: logg}
}

func (s *service) List(ctx context.Context, filters Filters) (*types.Paginated[Product], error) {
	all := s.repo.All(ctx)

	matched := make([]Product, 0, len(all))
	for _, product := range all {
		if !matchesFilters(product, filters) {
			continue
		}
		matched = append(matched, product)
	}

	params := pagination.Params{Page: filters.Page, PageSize: filters.PageSize}.Normalize()
	start, end := params.Bounds(len(matched))

	return &types.Paginated[Product]{
		Data:       matched[start:end],
		Page:       params.Page,
		PageSize:   params.PageSize,
		Total:      len(matched),
		TotalPages: params.TotalPages(len(matched)),
	}, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.Categories(ctx), nil
}

// matchesFilters applies every provided filter; filters are ANDed together
// while the search term matches any of name, description or tags.
func matchesFilters(product Product, filters Filters) bool {
	if filters.CategoryID != nil && product.CategoryID != *filters.CategoryID {
		return false
	}
	if len(filters.Tags) > 0 && !hasAnyTag(product.Tags, filters.Tags) {
		return false
	}
	if term := strings.TrimSpace(filters.Search); term != "" {
		return matchesSearch(product, term)
	}
	return true
}

func matchesSearch(product Product, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(product.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(product.Description), term) {
		return true
	}
	for _, tag := range product.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func hasAnyTag(productTags, wanted []string) bool {
	for _, want := range wanted {
		for _, have := range productTags {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}
