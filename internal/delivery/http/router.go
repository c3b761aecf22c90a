package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"hackfinder/internal/delivery/http/controllers"
	"hackfinder/internal/delivery/http/middleware"
	"hackfinder/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	gate domain.AuthService,
	hackathonController *controllers.HackathonController,
	authController *controllers.AuthController,
	userController *controllers.UserController,
) *http.ServeMux {
	mux := http.NewServeMux()

	requireUser := middleware.RequireAuth(gate, domain.RoleUser)
	requireAdmin := middleware.RequireAuth(gate, domain.RoleAdmin)
	optionalAuth := middleware.OptionalAuth(gate)

	// Catalog
	mux.HandleFunc("GET /hackathons", optionalAuth(hackathonController.List))
	mux.HandleFunc("GET /hackathons/search", hackathonController.Search)
	mux.HandleFunc("GET /hackathons/{id}", hackathonController.Get)
	mux.HandleFunc("POST /hackathons", requireAdmin(hackathonController.Create))
	mux.HandleFunc("PUT /hackathons/{id}", requireAdmin(hackathonController.Update))
	mux.HandleFunc("DELETE /hackathons/{id}", requireAdmin(hackathonController.Delete))

	// Auth and account
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("POST /auth/bootstrap-admin", authController.BootstrapAdmin)
	mux.HandleFunc("GET /auth/me", requireUser(authController.Me))
	mux.HandleFunc("PUT /auth/profile", requireUser(authController.UpdateProfile))
	mux.HandleFunc("POST /auth/bookmark/{hackathonID}", requireUser(authController.ToggleBookmark))
	mux.HandleFunc("POST /auth/participate/{hackathonID}", requireUser(authController.Participate))

	// Admin user management
	mux.HandleFunc("GET /users", requireAdmin(userController.List))
	mux.HandleFunc("GET /users/{id}", requireAdmin(userController.Get))
	mux.HandleFunc("PUT /users/{id}", requireAdmin(userController.Update))
	mux.HandleFunc("DELETE /users/{id}", requireAdmin(userController.Delete))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
