package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/vvstudio/visual-intake/models"
	"github.com/vvstudio/visual-intake/store"
)

// SubmissionHandler serves the collection and item resources over a
// SubmissionStore.
type SubmissionHandler struct {
	store store.SubmissionStore
}

func NewSubmissionHandler(s store.SubmissionStore) *SubmissionHandler {
	return &SubmissionHandler{store: s}
}

// ListSubmissions handles GET /api/submissions. Returns every
// submission, most recent first.
func (h *SubmissionHandler) ListSubmissions(c *fiber.Ctx) error {
	submissions, err := h.store.List(c.Context())
	if err != nil {
		log.Printf("Failed to fetch submissions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch submissions",
		})
	}

	return c.JSON(submissions)
}

// CreateSubmission handles POST /api/submissions.
func (h *SubmissionHandler) CreateSubmission(c *fiber.Ctx) error {
	type NewSubmission struct {
		Content      string `json:"content"`
		SocialHandle string `json:"socialHandle"`
	}

	input := new(NewSubmission)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.Content == "" || input.SocialHandle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Content and social handle are required",
		})
	}

	submission := models.Submission{
		Content:      input.Content,
		SocialHandle: input.SocialHandle,
		Status:       models.StatusPending,
	}

	if err := h.store.Create(c.Context(), &submission); err != nil {
		log.Printf("Failed to create submission: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create submission",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(submission)
}

// UpdateSubmission handles PATCH /api/submissions/:id. Each body field
// is applied only when present: status must be one of the known values
// when supplied, while response and responseUrl accept explicit empty
// strings and nulls as stored values.
func (h *SubmissionHandler) UpdateSubmission(c *fiber.Ctx) error {
	id := c.Params("id")

	var input models.UpdateSubmissionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if input.HasStatus() && !models.IsValidStatus(input.Status.Value) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Status must be pending, completed or rejected",
		})
	}

	submission, err := h.store.Update(c.Context(), id, input)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Submission not found",
			})
		}
		log.Printf("Failed to update submission %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update submission",
		})
	}

	return c.JSON(submission)
}
