package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/socialsync/socialdb/internal/services"
	"github.com/socialsync/socialdb/internal/utils"
)

// UserHandler handles the /api/users routes.
type UserHandler struct {
	Users *services.UserService
}

// Create handles POST /api/users
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param body body services.CreateUserInput true "User fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var input services.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	return respond(c, fiber.StatusCreated, h.Users.Create(c.UserContext(), input))
}

// GetByID handles GET /api/users/:id
// @Summary Get a user by ID
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, h.Users.FindByID(c.UserContext(), c.Params("id")))
}

// List handles GET /api/users with optional filters.
// @Summary List users
// @Tags Users
// @Produce json
// @Param username query string false "Username substring, case-insensitive"
// @Param email query string false "Email substring, case-insensitive"
// @Param createdAfter query string false "Inclusive lower creation bound (RFC3339 or unix seconds)"
// @Param createdBefore query string false "Inclusive upper creation bound (RFC3339 or unix seconds)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	filters := services.UserFilters{
		Username: c.Query("username"),
		Email:    c.Query("email"),
	}

	var err error
	if filters.CreatedAfter, err = queryTime(c, "createdAfter"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid createdAfter value")
	}
	if filters.CreatedBefore, err = queryTime(c, "createdBefore"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid createdBefore value")
	}

	return respond(c, fiber.StatusOK, h.Users.FindAll(c.UserContext(), filters))
}

// Update handles PUT /api/users/:id
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body services.UpdateUserInput true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var input services.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	return respond(c, fiber.StatusOK, h.Users.Update(c.UserContext(), c.Params("id"), input))
}

// Delete handles DELETE /api/users/:id
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, h.Users.Delete(c.UserContext(), c.Params("id")))
}
