package interfaces

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/dmartinrz/tareas-backend/internal/tasks/domain"
	taskErrors "github.com/dmartinrz/tareas-backend/internal/tasks/errors"
)

type TaskServiceInterface interface {
	GetAllTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.NewTask) (*domain.Task, error)
	UpdateTask(ctx context.Context, taskID int64, update domain.TaskUpdate) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
}

type TaskHandler struct {
	service      TaskServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTaskHandler(
	service TaskServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TaskHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TaskHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// statusFor maps the error taxonomy to a status code. The envelope shape is
// identical for every kind; only the status varies.
func statusFor(err error) int {
	switch {
	case taskErrors.IsValidationError(err) || taskErrors.IsReferenceError(err):
		return http.StatusBadRequest
	case taskErrors.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *TaskHandler) handleError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("Persistence failure: %v", err)
	}
	h.respondError(w, status, err.Error())
}

func parseTaskID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.GetAllTasks(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var input domain.NewTask
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	task, err := h.service.CreateTask(r.Context(), input)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := parseTaskID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Identificador de tarea inválido")
		return
	}

	var update domain.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.respondError(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	task, err := h.service.UpdateTask(r.Context(), taskID, update)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := parseTaskID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Identificador de tarea inválido")
		return
	}

	if err := h.service.DeleteTask(r.Context(), taskID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
