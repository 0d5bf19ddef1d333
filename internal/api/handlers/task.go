package handlers

import (
	"net/http"

	"team-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles HTTP requests for tasks
type TaskHandler struct {
	service service.TaskServiceInterface
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(service service.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{service: service}
}

// ListMyTasks lists tasks across every group the caller can access
// @Summary List my tasks
// @Tags tasks
// @Produce json
// @Param search query string false "Title or description substring"
// @Param status query string false "Task status"
// @Param assigned query string false "self or others"
// @Success 200 {array} service.TaskResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) ListMyTasks(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var query service.TaskQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	tasks, err := h.service.ListForUser(userID, &query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// ListGroupTasks lists a group's tasks with per-status counts
// @Summary List group tasks
// @Tags tasks
// @Produce json
// @Param id path string true "Group ID"
// @Param search query string false "Title or description substring"
// @Param status query string false "Task status"
// @Param assigned query string false "self or others"
// @Success 200 {object} service.GroupTasksResponse
// @Failure 403 {object} ErrorResponse "No access"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/tasks [get]
func (h *TaskHandler) ListGroupTasks(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	groupID, ok := pathID(c, "id", "group")
	if !ok {
		return
	}

	var query service.TaskQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	tasks, err := h.service.ListByGroup(groupID, userID, &query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a task
// @Summary Create task
// @Description Create a task in a group. Admin only.
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body service.CreateTaskRequest true "Task data"
// @Success 201 {object} service.TaskResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a group admin"
// @Security BearerAuth
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	task, err := h.service.Create(c, &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTask retrieves a task
// @Summary Get task by ID
// @Tags tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} service.TaskResponse
// @Failure 403 {object} ErrorResponse "No access"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id", "task")
	if !ok {
		return
	}

	task, err := h.service.GetByID(taskID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask replaces a task's editable fields
// @Summary Update task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param task body service.UpdateTaskRequest true "Task data"
// @Success 200 {object} service.TaskResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a group admin"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id", "task")
	if !ok {
		return
	}

	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	task, err := h.service.Update(c, taskID, &req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTaskStatus changes only a task's status
// @Summary Update task status
// @Description Any member with access may move a task between statuses
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body service.UpdateTaskStatusRequest true "New status"
// @Success 200 {object} service.TaskResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 403 {object} ErrorResponse "No access"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id}/status [patch]
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id", "task")
	if !ok {
		return
	}

	var req service.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	task, err := h.service.UpdateStatus(c, taskID, req.Status, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// @Summary Delete task
// @Tags tasks
// @Param id path string true "Task ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Not a group admin"
// @Failure 404 {object} ErrorResponse "Task not found"
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id", "task")
	if !ok {
		return
	}

	if err := h.service.Delete(c, taskID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
