package handlers

import (
	"database/sql"
	"errors"

	"github.com/Sinhaamisha5/todo-api/database"
	"github.com/Sinhaamisha5/todo-api/models"
	"github.com/gofiber/fiber/v2"
)

// @Summary List all todos.
// @Description fetch every todo, most recently created first.
// @Tags todos
// @Produce json
// @Success 200 {object} []models.Todo
// @Router /api/todos [get]
func HandleAllTodos(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		db, err := database.Open(h.DBPath)
		if err != nil {
			h.L.Error("[TodoDB] Error opening database: ", err)
			return ErrorJSON(c, fiber.StatusInternalServerError, "failed to open database")
		}
		defer db.Close()

		rows, err := db.Query(`SELECT id, title, description, completed, created_at FROM todos ORDER BY created_at DESC, id DESC`)
		if err != nil {
			h.L.Error("[TodoDB] Error listing todos: ", err)
			return ErrorJSON(c, fiber.StatusInternalServerError, "failed to list todos")
		}
		defer rows.Close()

		todos := make([]models.Todo, 0)
		for rows.Next() {
			var todo models.Todo
			if err = rows.Scan(&todo.ID, &todo.Title, &todo.Description, &todo.Completed, &todo.CreatedAt); err != nil {
				h.L.Error("[TodoDB] Error scanning todo: ", err)
				return ErrorJSON(c, fiber.StatusInternalServerError, "failed to list todos")
			}
			todos = append(todos, todo)
		}
		if err = rows.Err(); err != nil {
			h.L.Error("[TodoDB] Error listing todos: ", err)
			return ErrorJSON(c, fiber.StatusInternalServerError, "failed to list todos")
		}

		return c.JSON(todos)
	}
}

// @Summary Get a single todo.
// @Description fetch a todo by its id.
// @Tags todos
// @Param id path int true "Todo ID"
// @Produce json
// @Success 200 {object} models.Todo
// @Failure 404 {object} models.ErrorResponse
// @Router /api/todos/{id} [get]
func HandleGetOneTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return ErrorJSON(c, fiber.StatusBadRequest, "Invalid todo id")
		}

		db, err := database.Open(h.DBPath)
		if err != nil {
			h.L.Error("[TodoDB] Error opening database: ", err)
			return ErrorJSON(c, fiber.StatusInternalServerError, "failed to open database")
		}
		defer db.Close()

		todo, err := getTodoByID(db, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrorJSON(c, fiber.StatusNotFound, "Todo not found")
			}
			h.L.Error("[TodoDB] Error getting todo: ", err)
			return ErrorJSON(c, fiber.StatusInternalServerError, "failed to get todo")
		}

		return c.JSON(todo)
	}
}

// @Summary Create a todo.
// @Description create a single todo; title is required.
// @Tags todos
// @Accept json
// @Param todo body models.CreateTodoRequest true "Todo to create"
// @Produce json
// @Success 201 {object} models.CreateTodoResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/todos [post]
func HandleCreateTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		nTodo := new(models.CreateTodoRequest)
		if err := c.BodyParser(nTodo); err != nil {
			// A malformed body is treated as an empty one and falls
			// through to title validation.
			nTodo = new(models.CreateTodoRequest)
		}

		if nTodo.Title == nil {
			return ErrorJSON(c, fiber.StatusBadRequest, "Title is required")
		}

		description := ""
		if nTodo.Description != nil {
			description = *nTodo.Description
		}
		completed := false
		if nTodo.Completed != nil {
			completed = *nTodo.Completed
		}

		db, err := database.Open(h.DBPath)
		if err != nil {
			h.L.Error("[TodoDB] Error opening database: ", err)
			return ErrorJSON(c, fiber.StatusInternalServerError, "failed to open database")
		}
		defer db.Close()

		res, err := db.Exec(`INSERT INTO todos (title, description, completed) VALUES (?, ?, ?)`,
			*nTodo.Title, description, completed)
		if err != nil {
			h.L.Error("[TodoDB] Error creating todo: ", err)
			return ErrorJSON(c, fiber.StatusInternalServerError, "failed to create todo")
		}

		id, err := res.LastInsertId()
		if err != nil {
			h.L.Error("[TodoDB] Error reading new todo id: ", err)
			return ErrorJSON(c, fiber.StatusInternalServerError, "failed to create todo")
		}

		return c.Status(fiber.StatusCreated).JSON(models.CreateTodoResponse{
			ID:      id,
			Message: "Todo created successfully",
		})
	}
}

// @Summary Update a todo.
// @Description update a todo; omitted fields keep their stored values.
// @Tags todos
// @Accept json
// @Param id path int true "Todo ID"
// @Param todo body models.UpdateTodoRequest true "Fields to update"
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/todos/{id} [put]
func HandleUpdateTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return ErrorJSON(c, fiber.StatusBadRequest, "Invalid todo id")
		}

		patch := new(models.UpdateTodoRequest)
		if err := c.BodyParser(patch); err != nil {
			// Empty patch: the row is rewritten with its current values.
			patch = new(models.UpdateTodoRequest)
		}

		db, err := database.Open(h.DBPath)
		if err != nil {
			h.L.Error("[TodoDB] Error opening database: ", err)
			return ErrorJSON(c, fiber.StatusInternalServerError, "failed to open database")
		}
		defer db.Close()

		todo, err := getTodoByID(db, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrorJSON(c, fiber.StatusNotFound, "Todo not found")
			}
			h.L.Error("[TodoDB] Error getting todo: ", err)
			return ErrorJSON(c, fiber.StatusInternalServerError, "failed to update todo")
		}

		if patch.Title != nil {
			todo.Title = *patch.Title
		}
		if patch.Description != nil {
			todo.Description = *patch.Description
		}
		if patch.Completed != nil {
			todo.Completed = *patch.Completed
		}

		// Full-row overwrite, not a partial patch.
		_, err = db.Exec(`UPDATE todos SET title = ?, description = ?, completed = ? WHERE id = ?`,
			todo.Title, todo.Description, todo.Completed, id)
		if err != nil {
			h.L.Error("[TodoDB] Error updating todo: ", err)
			return ErrorJSON(c, fiber.StatusInternalServerError, "failed to update todo")
		}

		return c.JSON(models.MessageResponse{Message: "Todo updated successfully"})
	}
}

// @Summary Delete a todo.
// @Description delete a todo by its id.
// @Tags todos
// @Param id path int true "Todo ID"
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/todos/{id} [delete]
func HandleDeleteTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return ErrorJSON(c, fiber.StatusBadRequest, "Invalid todo id")
		}

		db, err := database.Open(h.DBPath)
		if err != nil {
			h.L.Error("[TodoDB] Error opening database: ", err)
			return ErrorJSON(c, fiber.StatusInternalServerError, "failed to open database")
		}
		defer db.Close()

		res, err := db.Exec(`DELETE FROM todos WHERE id = ?`, id)
		if err != nil {
			h.L.Error("[TodoDB] Error deleting todo: ", err)
			return ErrorJSON(c, fiber.StatusInternalServerError, "failed to delete todo")
		}

		affected, err := res.RowsAffected()
		if err != nil {
			h.L.Error("[TodoDB] Error reading delete result: ", err)
			return ErrorJSON(c, fiber.StatusInternalServerError, "failed to delete todo")
		}
		if affected == 0 {
			return ErrorJSON(c, fiber.StatusNotFound, "Todo not found")
		}

		return c.JSON(models.MessageResponse{Message: "Todo deleted successfully"})
	}
}

func getTodoByID(db *sql.DB, id int) (*models.Todo, error) {
	var todo models.Todo
	err := db.QueryRow(`SELECT id, title, description, completed, created_at FROM todos WHERE id = ?`, id).
		Scan(&todo.ID, &todo.Title, &todo.Description, &todo.Completed, &todo.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &todo, nil
}
