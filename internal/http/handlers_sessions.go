package http

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"studio/internal/model"
	"studio/internal/store"
)

func listSessionsHandler(c *fiber.Ctx) error {
	st := c.Locals("store").(*store.Store)

	sessions, err := st.ListSessions(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Success: false,
			Code:    "INTERNAL_ERROR",
			Error:   "Failed to list sessions",
		})
	}
	if sessions == nil {
		sessions = []model.SessionWithGenerations{}
	}

	return c.JSON(SessionsResponse{Success: true, Sessions: sessions})
}

func createSessionHandler(c *fiber.Ctx) error {
	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "BAD_REQUEST_INVALID_JSON",
			Error:   "Bad request, malformed JSON",
		})
	}

	name := req.Name
	if name == "" {
		name = "Session " + time.Now().Format("1/2/2006")
	}

	st := c.Locals("store").(*store.Store)
	session, err := st.CreateSession(c.Context(), name, req.BrandConfig)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Success: false,
			Code:    "INTERNAL_ERROR",
			Error:   "Failed to create session",
		})
	}

	return c.JSON(SessionResponse{Success: true, Session: &model.SessionWithGenerations{
		Session:     session,
		Generations: []model.Generation{},
	}})
}

func getSessionHandler(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "BAD_REQUEST_INVALID_ID",
			Error:   "Invalid session id",
		})
	}

	st := c.Locals("store").(*store.Store)
	session, err := st.GetSession(c.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Success: false,
				Code:    "NOT_FOUND",
				Error:   "Session not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Success: false,
			Code:    "INTERNAL_ERROR",
			Error:   "Failed to load session",
		})
	}

	return c.JSON(SessionResponse{Success: true, Session: &session})
}

func deleteSessionHandler(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "BAD_REQUEST_INVALID_ID",
			Error:   "Invalid session id",
		})
	}

	st := c.Locals("store").(*store.Store)
	deleted, err := st.DeleteSession(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Success: false,
			Code:    "INTERNAL_ERROR",
			Error:   "Failed to delete session",
		})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Success: false,
			Code:    "NOT_FOUND",
			Error:   "Session not found",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

func addGenerationHandler(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "BAD_REQUEST_INVALID_ID",
			Error:   "Invalid session id",
		})
	}

	var req AddGenerationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "BAD_REQUEST_INVALID_JSON",
			Error:   "Bad request, malformed JSON",
		})
	}
	if req.CloudinaryURL == "" || req.CloudinaryPublicID == "" || req.OriginalURL == "" || req.Model == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Success: false,
			Code:    "BAD_REQUEST",
			Error:   "cloudinaryUrl, cloudinaryPublicId, originalUrl and model are required",
		})
	}

	st := c.Locals("store").(*store.Store)
	gen, err := st.AddGeneration(c.Context(), store.GenerationParams{
		SessionID:          id,
		Type:               req.Type,
		CloudinaryURL:      req.CloudinaryURL,
		CloudinaryPublicID: req.CloudinaryPublicID,
		OriginalURL:        req.OriginalURL,
		Width:              req.Width,
		Height:             req.Height,
		Model:              req.Model,
		Prompt:             req.Prompt,
		Options:            req.Options,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// Foreign key violation: the session does not exist.
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Success: false,
				Code:    "NOT_FOUND",
				Error:   "Session not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Success: false,
			Code:    "INTERNAL_ERROR",
			Error:   "Failed to record generation",
		})
	}

	return c.JSON(GenerationResponse{Success: true, Generation: &gen})
}
