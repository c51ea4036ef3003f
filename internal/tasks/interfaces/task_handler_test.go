package interfaces

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmartinrz/tareas-backend/internal/tasks/domain"
	taskErrors "github.com/dmartinrz/tareas-backend/internal/tasks/errors"
)

func TestGetTasks_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tareas", nil)
	w := httptest.NewRecorder()

	mockService := &MockTaskService{
		tasks: []domain.Task{
			{ID: 3, Title: "Comprar pan", Description: "Antes de las 14:00", Category: domain.Category{ID: 1, Name: "Compras"}},
			{ID: 1, Title: "Informe", Description: "Enviar al equipo", Category: domain.Category{ID: 2, Name: "Trabajo"}, Completed: true},
		},
	}
	handler := NewTaskHandler(mockService, respondJSON, respondError)
	handler.GetTasks(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)

	var tasks []domain.Task
	err := json.NewDecoder(res.Body).Decode(&tasks)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(tasks))
	assert.Equal(t, "Compras", tasks[0].Category.Name)
}

func TestGetTasks_PersistenceError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tareas", nil)
	w := httptest.NewRecorder()

	mockService := &MockTaskService{
		err: taskErrors.NewPersistenceError("Error al obtener tareas", assert.AnError),
	}
	handler := NewTaskHandler(mockService, respondJSON, respondError)
	handler.GetTasks(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var response map[string]string
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], "Error al obtener tareas")
}

func TestCreateTask_Success(t *testing.T) {
	body := `{"titulo":"Comprar pan","descripcion":"Antes de las 14:00","categoria_id":1}`
	req := httptest.NewRequest(http.MethodPost, "/tareas", strings.NewReader(body))
	w := httptest.NewRecorder()

	mockService := &MockTaskService{
		task: &domain.Task{
			ID:          1,
			Title:       "Comprar pan",
			Description: "Antes de las 14:00",
			Category:    domain.Category{ID: 1, Name: "Compras"},
		},
	}
	handler := NewTaskHandler(mockService, respondJSON, respondError)
	handler.CreateTask(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var task domain.Task
	err := json.NewDecoder(res.Body).Decode(&task)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), task.ID)
	assert.False(t, task.Completed)

	assert.NotNil(t, mockService.createdWith)
	assert.Equal(t, "Comprar pan", mockService.createdWith.Title)
	assert.Equal(t, int64(1), mockService.createdWith.CategoryID)
}

func TestCreateTask_InvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tareas", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	mockService := &MockTaskService{}
	handler := NewTaskHandler(mockService, respondJSON, respondError)
	handler.CreateTask(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Nil(t, mockService.createdWith)
}

func TestCreateTask_EmptyTitle(t *testing.T) {
	body := `{"titulo":"  ","descripcion":"algo","categoria_id":1}`
	req := httptest.NewRequest(http.MethodPost, "/tareas", strings.NewReader(body))
	w := httptest.NewRecorder()

	mockService := &MockTaskService{err: taskErrors.ErrEmptyTitle}
	handler := NewTaskHandler(mockService, respondJSON, respondError)
	handler.CreateTask(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]string
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "El título no puede estar vacío", response["error"])
}

func TestCreateTask_UnknownCategory(t *testing.T) {
	body := `{"titulo":"Comprar pan","descripcion":"algo","categoria_id":9999}`
	req := httptest.NewRequest(http.MethodPost, "/tareas", strings.NewReader(body))
	w := httptest.NewRecorder()

	mockService := &MockTaskService{err: taskErrors.NewCategoryReferenceError(9999)}
	handler := NewTaskHandler(mockService, respondJSON, respondError)
	handler.CreateTask(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var response map[string]string
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "La categoría con ID 9999 no existe", response["error"])
}

func TestUpdateTask_Success(t *testing.T) {
	body := `{"completada":true}`
	req := httptest.NewRequest(http.MethodPatch, "/tareas/7", strings.NewReader(body))
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()

	mockService := &MockTaskService{
		task: &domain.Task{
			ID:          7,
			Title:       "Comprar pan",
			Description: "Antes de las 14:00",
			Category:    domain.Category{ID: 1, Name: "Compras"},
			Completed:   true,
		},
	}
	handler := NewTaskHandler(mockService, respondJSON, respondError)
	handler.UpdateTask(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, int64(7), mockService.updatedID)
	assert.NotNil(t, mockService.updatedWith)
	assert.Nil(t, mockService.updatedWith.Title)
	assert.NotNil(t, mockService.updatedWith.Completed)
	assert.True(t, *mockService.updatedWith.Completed)

	var task domain.Task
	err := json.NewDecoder(res.Body).Decode(&task)
	assert.NoError(t, err)
	assert.True(t, task.Completed)
}

func TestUpdateTask_InvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/tareas/abc", strings.NewReader(`{}`))
	req.SetPathValue("id", "abc")
	w := httptest.NewRecorder()

	mockService := &MockTaskService{}
	handler := NewTaskHandler(mockService, respondJSON, respondError)
	handler.UpdateTask(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestUpdateTask_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodPatch, "/tareas/42", strings.NewReader(`{"completada":true}`))
	req.SetPathValue("id", "42")
	w := httptest.NewRecorder()

	mockService := &MockTaskService{err: taskErrors.NewTaskNotFoundError(42)}
	handler := NewTaskHandler(mockService, respondJSON, respondError)
	handler.UpdateTask(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var response map[string]string
	err := json.NewDecoder(res.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "La tarea con ID 42 no existe", response["error"])
}

func TestDeleteTask_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/tareas/3", nil)
	req.SetPathValue("id", "3")
	w := httptest.NewRecorder()

	mockService := &MockTaskService{}
	handler := NewTaskHandler(mockService, respondJSON, respondError)
	handler.DeleteTask(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Equal(t, int64(3), mockService.deletedID)

	body := w.Body.String()
	assert.Empty(t, body)
}

func TestDeleteTask_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/tareas/99", nil)
	req.SetPathValue("id", "99")
	w := httptest.NewRecorder()

	mockService := &MockTaskService{err: taskErrors.NewTaskNotFoundError(99)}
	handler := NewTaskHandler(mockService, respondJSON, respondError)
	handler.DeleteTask(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
