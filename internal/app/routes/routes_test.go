package routes

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/akshat/marksheet/internal/app/controllers"
	"github.com/akshat/marksheet/internal/app/services"
	"github.com/akshat/marksheet/internal/middleware"
	"github.com/akshat/marksheet/internal/pkg/auth"
)

// Registering mixed static and parameter segments under the same prefix
// makes gin panic at startup if the tree conflicts, so building the full
// route table is itself the assertion.
func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret"})
	nop := zerolog.Nop()

	authService := services.NewAuthService(nil, jwtService, nop)
	studentService := services.NewStudentService(nil, nil, nil, nop)
	marksService := services.NewMarksService(nil, nil, nop)
	reportService := services.NewReportService(nil, nop)

	SetupRouter(
		router,
		controllers.NewAuthController(authService),
		controllers.NewStudentController(studentService),
		controllers.NewMarksController(marksService),
		controllers.NewReportController(reportService),
		middleware.NewAuthMiddleware(jwtService, nil),
	)

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		http.MethodPost + " /token",
		http.MethodGet + " /health",
		http.MethodGet + " /users/:username",
		http.MethodGet + " /students",
		http.MethodPost + " /students",
		http.MethodGet + " /students/:id",
		http.MethodPut + " /students/:id",
		http.MethodDelete + " /students/:id",
		http.MethodPut + " /students/by-roll/:roll",
		http.MethodDelete + " /students/by-roll/:roll",
		http.MethodGet + " /marks",
		http.MethodPost + " /marks",
		http.MethodGet + " /marks/:student_id",
		http.MethodGet + " /marks/by-roll/:roll",
		http.MethodGet + " /marks/id/:marks_id",
		http.MethodPut + " /marks/:marks_id",
		http.MethodDelete + " /marks/:marks_id",
		http.MethodGet + " /reports/class-performance",
		http.MethodGet + " /reports/subject-performance",
		http.MethodGet + " /reports/top-performers",
	}

	for _, route := range want {
		if !registered[route] {
			t.Errorf("route %q not registered", route)
		}
	}
}
