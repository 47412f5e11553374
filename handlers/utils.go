package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/spatial-todo/database"
	"github.com/jalexanderII/spatial-todo/models"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ToDoResponse struct {
	Message string       `json:"message"`
	ToDo    *models.ToDo `json:"toDo"`
}

type AllToDosResponse struct {
	Message  string        `json:"message"`
	AllToDos []models.ToDo `json:"allToDos"`
}

type Handler struct {
	Store database.ToDoStore
	L     *logrus.Logger
}

func NewHandler(store database.ToDoStore, l *logrus.Logger) *Handler {
	return &Handler{
		Store: store,
		L:     l,
	}
}

// Log returns a log entry tagged with the request id, if any.
func (h *Handler) Log(c *fiber.Ctx) *logrus.Entry {
	if id, ok := c.Locals("requestid").(string); ok && id != "" {
		return h.L.WithField("request_id", id)
	}
	return logrus.NewEntry(h.L)
}

// FiberTextError logs err and answers with a fixed plain-text 500. The
// underlying error never reaches the client.
func FiberTextError(c *fiber.Ctx, h *Handler, logMessage, message string, err error) error {
	h.Log(c).WithError(err).Error(logMessage)
	return c.Status(fiber.StatusInternalServerError).SendString(message)
}

// parseBody decodes a JSON or form body into out. An empty body, or one in a
// content type Fiber cannot decode, leaves out unchanged so every field stays
// absent. Malformed JSON and wrongly typed fields are still errors.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	err := c.BodyParser(out)
	if errors.Is(err, fiber.ErrUnprocessableEntity) {
		return nil
	}
	return err
}
