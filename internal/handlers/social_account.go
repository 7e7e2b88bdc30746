package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/socialsync/socialdb/internal/models"
	"github.com/socialsync/socialdb/internal/services"
	"github.com/socialsync/socialdb/internal/utils"
)

// SocialAccountHandler handles the /api/accounts routes.
type SocialAccountHandler struct {
	Accounts *services.SocialAccountService
}

// Create handles POST /api/accounts
// @Summary Link a social media account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param body body services.CreateSocialAccountInput true "Account fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /accounts [post]
func (h *SocialAccountHandler) Create(c *fiber.Ctx) error {
	var input services.CreateSocialAccountInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	return respond(c, fiber.StatusCreated, h.Accounts.Create(c.UserContext(), input))
}

// GetByID handles GET /api/accounts/:id
// @Summary Get an account by ID
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /accounts/{id} [get]
func (h *SocialAccountHandler) GetByID(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, h.Accounts.FindByID(c.UserContext(), c.Params("id")))
}

// ListByUser handles GET /api/users/:id/accounts
// @Summary List a user's linked accounts
// @Tags Accounts
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /users/{id}/accounts [get]
func (h *SocialAccountHandler) ListByUser(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, h.Accounts.FindByUserID(c.UserContext(), c.Params("id")))
}

// List handles GET /api/accounts with optional filters.
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Param platform query string false "Exact platform match"
// @Param username query string false "Username substring, case-insensitive"
// @Param userId query string false "Exact owning user match"
// @Param lastFetchedAfter query string false "Inclusive lower lastFetched bound"
// @Param lastFetchedBefore query string false "Inclusive upper lastFetched bound"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /accounts [get]
func (h *SocialAccountHandler) List(c *fiber.Ctx) error {
	filters := services.SocialAccountFilters{
		Platform: models.Platform(c.Query("platform")),
		Username: c.Query("username"),
		UserID:   c.Query("userId"),
	}

	var err error
	if filters.LastFetchedAfter, err = queryTime(c, "lastFetchedAfter"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid lastFetchedAfter value")
	}
	if filters.LastFetchedBefore, err = queryTime(c, "lastFetchedBefore"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid lastFetchedBefore value")
	}

	return respond(c, fiber.StatusOK, h.Accounts.FindAll(c.UserContext(), filters))
}

// Update handles PUT /api/accounts/:id
// @Summary Update an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param body body services.UpdateSocialAccountInput true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /accounts/{id} [put]
func (h *SocialAccountHandler) Update(c *fiber.Ctx) error {
	var input services.UpdateSocialAccountInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	return respond(c, fiber.StatusOK, h.Accounts.Update(c.UserContext(), c.Params("id"), input))
}

// TouchLastFetched handles POST /api/accounts/:id/fetched
// @Summary Mark an account as freshly synced
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /accounts/{id}/fetched [post]
func (h *SocialAccountHandler) TouchLastFetched(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, h.Accounts.UpdateLastFetched(c.UserContext(), c.Params("id")))
}

// Delete handles DELETE /api/accounts/:id
// @Summary Unlink an account
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /accounts/{id} [delete]
func (h *SocialAccountHandler) Delete(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, h.Accounts.Delete(c.UserContext(), c.Params("id")))
}
