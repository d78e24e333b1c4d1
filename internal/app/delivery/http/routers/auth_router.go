package routers

import (
	"sehatnama-service/internal/app/delivery/http/controllers"
	"sehatnama-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/register", authController.Register)
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
	router.With(middlewares.Authenticate).Get("/me", authController.Me)
}

func attachUserRoutes(router chi.Router, userController *controllers.UserController) {
	router.Post("/", userController.CreateStaff)
}
