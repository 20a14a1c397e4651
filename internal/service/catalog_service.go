package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/hecho/catalog_api/internal/cache"
	"github.com/hecho/catalog_api/internal/i18n"
	"github.com/hecho/catalog_api/internal/models"
	"github.com/hecho/catalog_api/internal/repository"
)

// ProductStore is the product data access the catalog needs.
type ProductStore interface {
	ListCatalog(filter repository.CatalogFilter) (*repository.CatalogResult, error)
	CountByCategory(search string) (map[string]int, error)
}

// PromotionStore resolves which products carry an active promotion.
type PromotionStore interface {
	ActiveProductIDs(productIDs []string) (map[string]bool, error)
	ListActiveProducts(limit int) ([]models.Product, error)
}

// CategoryLister lists the active categories for the facet sidebar.
type CategoryLister interface {
	ListActive() ([]models.Category, error)
}

// FacetStore caches computed facet lists per locale and search term.
type FacetStore interface {
	Get(ctx context.Context, locale, search string) ([]models.CategoryFacet, error)
	Set(ctx context.Context, locale, search string, facets []models.CategoryFacet) error
}

// ProductView is a product shaped for the storefront: image resolved,
// promotion flag set, category collapsed to id and display name.
type ProductView struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Info         string `json:"info"`
	Description  string `json:"description,omitempty"`
	Quantity     string `json:"quantity"`
	Barcode      string `json:"barcode"`
	CategoryID   string `json:"categoryId,omitempty"`
	CategoryName string `json:"categoryName"`
	Image        string `json:"imageUrl"`
	IsPromotion  bool   `json:"isPromotion"`
}

// GroupView is one catalog card: a name with its variations.
type GroupView struct {
	Name            string        `json:"name"`
	Variations      []ProductView `json:"variations"`
	TotalVariations int           `json:"totalVariations"`
	Expandable      bool          `json:"expandable"`
}

// CatalogPage is the catalog response: grouped cards plus paging facts.
// Items counts the raw products on the page before grouping.
type CatalogPage struct {
	Groups   []GroupView `json:"groups"`
	Items    int         `json:"items"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	HasMore  bool        `json:"hasMore"`
}

// CatalogService runs the public catalog pipeline: filter, paginate, mark
// promotions, group by name. Database failures degrade to the embedded
// dataset so the storefront never errors out.
type CatalogService struct {
	products   ProductStore
	promotions PromotionStore
	categories CategoryLister
	facets     FacetStore
	pageSize   int
}

// NewCatalogService creates a CatalogService. facets may be nil to disable
// facet caching.
func NewCatalogService(products ProductStore, promotions PromotionStore, categories CategoryLister, facets FacetStore, pageSize int) *CatalogService {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &CatalogService{
		products:   products,
		promotions: promotions,
		categories: categories,
		facets:     facets,
		pageSize:   pageSize,
	}
}

// PageSize returns the configured page size.
func (s *CatalogService) PageSize() int {
	return s.pageSize
}

// ListProducts returns one page of the catalog. The filter's zero values mean
// page 1, the configured page size and no search or category constraint. When
// the database is unreachable the embedded dataset answers instead, and
// promotion marking is skipped.
func (s *CatalogService) ListProducts(ctx context.Context, filter repository.CatalogFilter) *CatalogPage {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = s.pageSize
	}

	degraded := false
	result, err := s.products.ListCatalog(filter)
	if err != nil {
		log.Error().Err(err).Str("search", filter.Search).Str("category", filter.Category).
			Msg("Catalog query failed, serving embedded dataset")
		result = fallbackCatalog(filter)
		degraded = true
	}

	if !degraded && len(result.Products) > 0 {
		ids := make([]string, len(result.Products))
		for i, p := range result.Products {
			ids[i] = p.ID
		}
		active, err := s.promotions.ActiveProductIDs(ids)
		if err != nil {
			log.Warn().Err(err).Msg("Promotion lookup failed, page served without promotion marks")
		} else {
			for i := range result.Products {
				result.Products[i].IsPromotion = active[result.Products[i].ID]
			}
		}
	}

	offset := (filter.Page - 1) * filter.PageSize
	groups := GroupByName(result.Products)
	views := make([]GroupView, len(groups))
	for i, g := range groups {
		views[i] = GroupView{
			Name:            g.Name,
			Variations:      toProductViews(g.Variations),
			TotalVariations: g.TotalVariations,
			Expandable:      g.Expandable(),
		}
	}

	return &CatalogPage{
		Groups:   views,
		Items:    len(result.Products),
		Total:    result.Total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		HasMore:  offset+len(result.Products) < result.Total,
	}
}

// FeaturedProducts returns up to limit products with an active promotion.
// Failures degrade to an empty list.
func (s *CatalogService) FeaturedProducts(ctx context.Context, limit int) []ProductView {
	products, err := s.promotions.ListActiveProducts(limit)
	if err != nil {
		log.Error().Err(err).Msg("Featured products query failed")
		return []ProductView{}
	}
	return toProductViews(products)
}

// CategoryFacets computes the sidebar: every active category with the number
// of products matching the search term, plus the synthetic "all" and (when
// non-empty) "uncategorized" entries. "all" always leads; the rest sort by
// descending count. Results are cached per locale and term.
func (s *CatalogService) CategoryFacets(ctx context.Context, tr *i18n.Translator, search string) []models.CategoryFacet {
	locale := string(tr.Locale())
	if s.facets != nil {
		if cached, err := s.facets.Get(ctx, locale, search); err == nil {
			return cached
		} else if !cache.IsMiss(err) {
			log.Warn().Err(err).Msg("Facet cache read failed")
		}
	}

	counts, err := s.products.CountByCategory(search)
	var categories []models.Category
	if err == nil {
		categories, err = s.categories.ListActive()
	}
	if err != nil {
		log.Error().Err(err).Msg("Facet queries failed, serving embedded dataset")
		counts = fallbackFacetCounts(search)
		categories = fallbackCategories()
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	facets := []models.CategoryFacet{{
		ID:          models.FacetAll,
		Name:        models.FacetAll,
		DisplayName: tr.T("category.all"),
		Count:       total,
		Description: tr.T("category.all.desc"),
	}}

	rest := make([]models.CategoryFacet, 0, len(categories)+1)
	for _, c := range categories {
		rest = append(rest, models.CategoryFacet{
			ID:          c.ID,
			Name:        c.Name,
			DisplayName: tr.Pick(c.TitlePT, c.TitleES),
			Count:       counts[c.ID],
			Description: tr.Pick(c.DescriptionPT, c.DescriptionES),
			Image:       c.ImageURL,
		})
	}
	if n := counts[""]; n > 0 {
		rest = append(rest, models.CategoryFacet{
			ID:          models.FacetUncategorized,
			Name:        models.FacetUncategorized,
			DisplayName: tr.T("category.uncategorized"),
			Count:       n,
		})
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Count > rest[j].Count
	})
	facets = append(facets, rest...)

	if s.facets != nil {
		if err := s.facets.Set(ctx, locale, search, facets); err != nil {
			log.Warn().Err(err).Msg("Facet cache write failed")
		}
	}
	return facets
}

func toProductViews(products []models.Product) []ProductView {
	views := make([]ProductView, len(products))
	for i, p := range products {
		categoryID := ""
		if p.CategoryID != nil {
			categoryID = *p.CategoryID
		}
		views[i] = ProductView{
			ID:           p.ID,
			Code:         p.Code,
			Name:         p.Name,
			Info:         p.Info,
			Description:  p.LongDesc,
			Quantity:     p.Quantity,
			Barcode:      p.Barcode,
			CategoryID:   categoryID,
			CategoryName: p.CategoryName,
			Image:        ResolveImage(p.ImageURL),
			IsPromotion:  p.IsPromotion,
		}
	}
	return views
}
