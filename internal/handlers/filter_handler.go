package handlers

import (
	"strings"

	"lumina/internal/filter"
	"lumina/internal/middleware"
	"lumina/internal/models"
	"lumina/internal/services"
	"lumina/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// FilterHandler manages the session's browsing criteria and semantic search.
type FilterHandler struct {
	products *services.ProductService
	search   *services.SearchService
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewFilterHandler creates a new FilterHandler.
func NewFilterHandler(products *services.ProductService, search *services.SearchService, logger *logrus.Logger) *FilterHandler {
	return &FilterHandler{
		products: products,
		search:   search,
		validate: validation.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the filter routes.
func (h *FilterHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/filters", h.HandleGetFilters)
	router.Patch("/filters", h.HandleUpdateFilters)
	router.Delete("/filters", h.HandleResetFilters)
	router.Post("/search", h.HandleSearch)
}

// UpdateFiltersRequest changes only the fields that are present.
type UpdateFiltersRequest struct {
	Category  *string          `json:"category"`
	MaxPrice  *decimal.Decimal `json:"max_price" validate:"omitempty,gte=0"`
	MinRating *float64         `json:"min_rating" validate:"omitempty,gte=0,lte=5"`
	Query     *string          `json:"query" validate:"omitempty,max=200"`
}

// SearchRequest represents the request body for a semantic search.
type SearchRequest struct {
	Query string `json:"query" validate:"max=200"`
}

// HandleGetFilters returns the current criteria.
func (h *FilterHandler) HandleGetFilters(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentSession(c).Criteria())
}

// HandleUpdateFilters applies a partial update to the criteria.
func (h *FilterHandler) HandleUpdateFilters(c *fiber.Ctx) error {
	var req UpdateFiltersRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if stop, err := validate(c, h.validate, req); stop {
		return err
	}

	var category models.Category
	if req.Category != nil {
		parsed, err := models.ParseCategory(*req.Category)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  fiber.Map{"Category": err.Error()},
			})
		}
		category = parsed
	}

	criteria := middleware.CurrentSession(c).UpdateCriteria(func(f *filter.Criteria) {
		if req.Category != nil {
			f.Category = category
		}
		if req.MaxPrice != nil {
			f.MaxPrice = *req.MaxPrice
		}
		if req.MinRating != nil {
			f.MinRating = *req.MinRating
		}
		if req.Query != nil {
			f.Query = *req.Query
		}
	})
	return c.JSON(criteria)
}

// HandleResetFilters restores the default criteria.
func (h *FilterHandler) HandleResetFilters(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentSession(c).ResetCriteria())
}

// HandleSearch runs a semantic search for the query and applies its result
// to the criteria, unless the query changed while the search ran.
func (h *FilterHandler) HandleSearch(c *fiber.Ctx) error {
	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if stop, err := validate(c, h.validate, req); stop {
		return err
	}

	s := middleware.CurrentSession(c)
	run, err := s.BeginSearch(req.Query)
	if err != nil {
		return respondError(c, h.logger, err, "Search failed")
	}
	applied := true
	if run {
		ids := h.search.Search(c.UserContext(), strings.TrimSpace(req.Query))
		applied = s.FinishSearch(req.Query, ids)
	}

	criteria := s.Criteria()
	products, err := h.products.Browse(criteria)
	if err != nil {
		return respondError(c, h.logger, err, "Could not retrieve products")
	}
	return c.JSON(fiber.Map{
		"applied":  applied,
		"criteria": criteria,
		"products": products,
	})
}
