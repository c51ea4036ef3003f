package main

import (
	"encoding/json"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	database "github.com/dmartinrz/tareas-backend/internal/db"
	"github.com/dmartinrz/tareas-backend/internal/tasks/application"
	"github.com/dmartinrz/tareas-backend/internal/tasks/infrastructure"
	"github.com/dmartinrz/tareas-backend/internal/tasks/interfaces"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)
		log.Printf("[%s] Started %s %s", requestID, r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("[%s] Completed %s in %v", requestID, r.URL.Path, time.Since(start))
	})
}

// corsMiddleware allows every origin and method; only Content-Type may be
// sent as a custom header. The browser UI lives on another origin.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type Server struct {
	router          *http.ServeMux
	taskHandler     *interfaces.TaskHandler
	categoryHandler *interfaces.CategoryHandler
	dbService       *database.DBService
}

func NewServer(taskHandler *interfaces.TaskHandler, categoryHandler *interfaces.CategoryHandler, dbService *database.DBService) *Server {
	return &Server{
		taskHandler:     taskHandler,
		categoryHandler: categoryHandler,
		dbService:       dbService,
		router:          http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "Ruta no encontrada")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.dbService.Health())
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()

	router.Handle("GET /categorias", http.HandlerFunc(s.categoryHandler.GetCategories))
	router.Handle("GET /tareas", http.HandlerFunc(s.taskHandler.GetTasks))
	router.Handle("POST /tareas", http.HandlerFunc(s.taskHandler.CreateTask))
	router.Handle("PATCH /tareas/{id}", http.HandlerFunc(s.taskHandler.UpdateTask))
	router.Handle("DELETE /tareas/{id}", http.HandlerFunc(s.taskHandler.DeleteTask))
	router.Handle("GET /health", http.HandlerFunc(s.handleHealth))
	router.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = router
}

func StartHealthScheduler(dbService *database.DBService) error {
	c := cron.New()
	_, err := c.AddFunc("@every 5m", func() {
		stats := dbService.Health()
		if stats["status"] != "up" {
			log.Printf("Database health check failed: %s", stats["error"])
		} else {
			log.Println("Database health check passed.")
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := database.EnsureSchema(dbService.DB); err != nil {
		log.Fatalf("Could not initialize schema: %v", err)
	}

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	taskRepo := infrastructure.NewTaskRepository(dbService.DB)

	categoryService := application.NewCategoryService(categoryRepo)
	taskService := application.NewTaskService(taskRepo, categoryRepo)

	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)
	taskHandler := interfaces.NewTaskHandler(taskService, respondJSON, respondError)

	server := NewServer(taskHandler, categoryHandler, dbService)
	server.RegisterRoutes()

	if err := StartHealthScheduler(dbService); err != nil {
		log.Fatalf("Scheduler didn't start, stoping the app ...")
	}

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":3000"
	}

	handler := loggingMiddleware(corsMiddleware(server.router))

	log.Println("Starting perf on port 6060...")
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	log.Printf("Server starting on %s...", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
