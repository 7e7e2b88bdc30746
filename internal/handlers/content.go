package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/socialsync/socialdb/internal/models"
	"github.com/socialsync/socialdb/internal/services"
	"github.com/socialsync/socialdb/internal/types"
	"github.com/socialsync/socialdb/internal/utils"
	"gorm.io/datatypes"
)

// ContentHandler handles the /api/content routes.
type ContentHandler struct {
	Content *services.ContentService
}

// Create handles POST /api/content
// @Summary Ingest a content item
// @Tags Content
// @Accept json
// @Produce json
// @Param body body object true "Content fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /content [post]
func (h *ContentHandler) Create(c *fiber.Ctx) error {
	var body struct {
		Type             models.ContentType `json:"type"`
		OriginalContent  string             `json:"originalContent"`
		ProcessedContent *string            `json:"processedContent"`
		SocialAccountID  string             `json:"socialAccountId"`
		Platform         models.Platform    `json:"platform"`
		PostedAt         types.FlexTime     `json:"postedAt"`
		Metadata         datatypes.JSON     `json:"metadata"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input := services.CreateContentInput{
		Type:             body.Type,
		OriginalContent:  body.OriginalContent,
		ProcessedContent: body.ProcessedContent,
		SocialAccountID:  body.SocialAccountID,
		Platform:         body.Platform,
		PostedAt:         body.PostedAt.Time(),
		Metadata:         body.Metadata,
	}
	return respond(c, fiber.StatusCreated, h.Content.Create(c.UserContext(), input))
}

// GetByID handles GET /api/content/:id
// @Summary Get a content item by ID
// @Tags Content
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /content/{id} [get]
func (h *ContentHandler) GetByID(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, h.Content.FindByID(c.UserContext(), c.Params("id")))
}

// Feed handles GET /api/accounts/:id/content
// @Summary List an account's content, newest first
// @Tags Content
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /accounts/{id}/content [get]
func (h *ContentHandler) Feed(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, h.Content.FindBySocialAccountID(c.UserContext(), c.Params("id")))
}

// List handles GET /api/content with optional filters.
// @Summary List content
// @Tags Content
// @Produce json
// @Param type query string false "Exact content type match"
// @Param platform query string false "Exact platform match"
// @Param socialAccountId query string false "Exact owning account match"
// @Param postedAfter query string false "Inclusive lower postedAt bound"
// @Param postedBefore query string false "Inclusive upper postedAt bound"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /content [get]
func (h *ContentHandler) List(c *fiber.Ctx) error {
	filters := services.ContentFilters{
		Type:            models.ContentType(c.Query("type")),
		Platform:        models.Platform(c.Query("platform")),
		SocialAccountID: c.Query("socialAccountId"),
	}

	var err error
	if filters.PostedAfter, err = queryTime(c, "postedAfter"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid postedAfter value")
	}
	if filters.PostedBefore, err = queryTime(c, "postedBefore"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid postedBefore value")
	}

	return respond(c, fiber.StatusOK, h.Content.FindAll(c.UserContext(), filters))
}

// Delete handles DELETE /api/content/:id
// @Summary Delete a content item
// @Tags Content
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /content/{id} [delete]
func (h *ContentHandler) Delete(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, h.Content.Delete(c.UserContext(), c.Params("id")))
}
