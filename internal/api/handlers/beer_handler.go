package handlers

import (
	"BeerExpiryTracker/domain"
	"BeerExpiryTracker/internal/api/presenters"
	"BeerExpiryTracker/pkg/beer"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BeerHandler interface {
		CreateBeer(c *fiber.Ctx) error
		UpdateBeer(c *fiber.Ctx) error
		DeleteBeer(c *fiber.Ctx) error
		GetBeers(c *fiber.Ctx) error
		GetBeerDetails(c *fiber.Ctx) error
		SearchBeers(c *fiber.Ctx) error
		GetUpcomingBeers(c *fiber.Ctx) error
		GetExpiryTimelineStats(c *fiber.Ctx) error
		GetTypeDistributionStats(c *fiber.Ctx) error
		GetBrandDistributionStats(c *fiber.Ctx) error
		GetStatsSummary(c *fiber.Ctx) error
	}

	beerHandler struct {
		beerService beer.BeerService
		validator   *validator.Validate
	}
)

func NewBeerHandler(beerService beer.BeerService, validator *validator.Validate) BeerHandler {
	return &beerHandler{
		beerService: beerService,
		validator:   validator,
	}
}

func statusForBeerError(err error) int {
	switch {
	case errors.Is(err, domain.ErrBeerNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedAccess):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}

func (h *beerHandler) CreateBeer(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateBeerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// image is optional on create
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBeer, err)
	}

	res, err := h.beerService.CreateBeer(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBeer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddBeer)
}

func (h *beerHandler) UpdateBeer(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	beerID := c.Params("id")
	req := new(domain.UpdateBeerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBeer, err)
	}

	res, err := h.beerService.UpdateBeer(c.Context(), beerID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForBeerError(err), domain.MessageFailedUpdateBeer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateBeer)
}

func (h *beerHandler) DeleteBeer(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	beerID := c.Params("id")

	if err := h.beerService.DeleteBeer(c.Context(), beerID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForBeerError(err), domain.MessageFailedDeleteBeer, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBeer)
}

func (h *beerHandler) GetBeers(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	beers, err := h.beerService.GetBeers(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBeers, err)
	}

	return presenters.SuccessResponse(c, beers, fiber.StatusOK, domain.MessageSuccessGetBeers)
}

func (h *beerHandler) GetBeerDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	beerID := c.Params("id")

	res, err := h.beerService.GetBeerByID(c.Context(), beerID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForBeerError(err), domain.MessageFailedGetBeers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBeers)
}

func (h *beerHandler) SearchBeers(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	query := c.Query("q")

	beers, err := h.beerService.SearchBeers(c.Context(), query, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchBeers, err)
	}

	return presenters.SuccessResponse(c, beers, fiber.StatusOK, domain.MessageSuccessSearchBeers)
}

func (h *beerHandler) GetUpcomingBeers(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	days, err := strconv.Atoi(c.Query("days", "30"))
	if err != nil || days < 1 {
		days = 30
	}

	beers, err := h.beerService.GetUpcomingBeers(c.Context(), userID, days)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpcomingBeers, err)
	}

	return presenters.SuccessResponse(c, beers, fiber.StatusOK, domain.MessageSuccessUpcomingBeers)
}

func (h *beerHandler) GetExpiryTimelineStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.beerService.GetExpiryTimelineStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStats)
}

func (h *beerHandler) GetTypeDistributionStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.beerService.GetTypeDistributionStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStats)
}

func (h *beerHandler) GetBrandDistributionStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.beerService.GetBrandDistributionStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStats)
}

func (h *beerHandler) GetStatsSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.beerService.GetStatsSummary(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStats)
}
