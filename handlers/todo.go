package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/spatial-todo/models"
)

// @Summary List all todos.
// @Description fetch every todo in the store.
// @Tags todos
// @Accept */*
// @Produce json
// @Success 200 {object} AllToDosResponse
// @Failure 500 {string} string "An error occurred while fetching all the ToDos."
// @Router /showAllToDos [get]
func ShowAllToDos(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		todos, err := h.Store.List(c.UserContext())
		if err != nil {
			return FiberTextError(c, h, "Error while Fetching All ToDos", "An error occurred while fetching all the ToDos.", err)
		}
		return c.JSON(AllToDosResponse{Message: "Successfully Fetched", AllToDos: todos})
	}
}

// @Summary Create a todo.
// @Description create a single todo; every field is optional.
// @Tags todos
// @Accept json
// @Param todo body models.ToDo true "ToDo to create"
// @Produce json
// @Success 200 {object} ToDoResponse
// @Failure 500 {string} string "An error occurred while adding the toDo."
// @Router /addToDo [post]
func AddToDo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		var input models.ToDo
		if err := parseBody(c, &input); err != nil {
			return FiberTextError(c, h, "Error while adding toDo into the database", "An error occurred while adding the toDo.", err)
		}

		todo, err := h.Store.Create(c.UserContext(), input)
		if err != nil {
			return FiberTextError(c, h, "Error while adding toDo into the database", "An error occurred while adding the toDo.", err)
		}
		h.Log(c).WithField("id", todo.ID.Hex()).Debug("toDo added")
		return c.JSON(ToDoResponse{Message: "Sucessfully Added", ToDo: todo})
	}
}

// @Summary Delete a todo.
// @Description delete a todo by id; unknown ids still succeed.
// @Tags todos
// @Param id path string true "ToDo ID"
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {string} string "An error occurred while deleting the toDo."
// @Router /delete/{id} [post]
func DeleteToDo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		if err := h.Store.Delete(c.UserContext(), c.Params("id")); err != nil {
			return FiberTextError(c, h, "Error while Deleting current toDo", "An error occurred while deleting the toDo.", err)
		}
		return c.JSON(MessageResponse{Message: "Successfully Deleted"})
	}
}

// @Summary Mark a todo as done.
// @Tags todos
// @Param id path string true "ToDo ID"
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {string} string "An error occurred while updating the toDo."
// @Router /markdone/{id} [post]
func MarkDone(h *Handler) func(c *fiber.Ctx) error {
	return setDone(h, true)
}

// @Summary Mark a todo as not done.
// @Tags todos
// @Param id path string true "ToDo ID"
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {string} string "An error occurred while updating the toDo."
// @Router /markundone/{id} [post]
func MarkUndone(h *Handler) func(c *fiber.Ctx) error {
	return setDone(h, false)
}

func setDone(h *Handler, done bool) func(c *fiber.Ctx) error {
	message := "Successfully Marked false"
	if done {
		message = "Successfully Marked true"
	}
	return func(c *fiber.Ctx) error {
		if err := h.Store.SetDone(c.UserContext(), c.Params("id"), done); err != nil {
			return FiberTextError(c, h, "Error while Changing Status", "An error occurred while updating the toDo.", err)
		}
		return c.JSON(MessageResponse{Message: message})
	}
}

// @Summary Update a todo's content.
// @Description overwrite title, description and isDone, then return the stored todo (null if the id is unknown).
// @Tags todos
// @Accept json
// @Param id path string true "ToDo ID"
// @Param content body models.ContentUpdate true "New content"
// @Produce json
// @Success 200 {object} ToDoResponse
// @Failure 500 {string} string "An error occurred while updating the toDo."
// @Router /update/{id} [post]
func UpdateToDo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		var input models.ContentUpdate
		if err := parseBody(c, &input); err != nil {
			return FiberTextError(c, h, "Error while Updating current toDo", "An error occurred while updating the toDo.", err)
		}

		todo, err := h.Store.UpdateContent(c.UserContext(), c.Params("id"), input)
		if err != nil {
			return FiberTextError(c, h, "Error while Updating current toDo", "An error occurred while updating the toDo.", err)
		}
		return c.JSON(ToDoResponse{Message: "Successfully Updated", ToDo: todo})
	}
}

// @Summary Move a todo on the canvas.
// @Description overwrite x and y, then return the stored todo (null if the id is unknown).
// @Tags todos
// @Accept json
// @Param id path string true "ToDo ID"
// @Param position body models.PositionUpdate true "New position"
// @Produce json
// @Success 200 {object} ToDoResponse
// @Failure 500 {string} string "An error occurred while updating the toDo's position."
// @Router /updatePosition/{id} [post]
func UpdatePosition(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		var input models.PositionUpdate
		if err := parseBody(c, &input); err != nil {
			return FiberTextError(c, h, "Error while Updating current toDo's position", "An error occurred while updating the toDo's position.", err)
		}

		todo, err := h.Store.UpdatePosition(c.UserContext(), c.Params("id"), input)
		if err != nil {
			return FiberTextError(c, h, "Error while Updating current toDo's position", "An error occurred while updating the toDo's position.", err)
		}
		return c.JSON(ToDoResponse{Message: "Successfully Updated", ToDo: todo})
	}
}
