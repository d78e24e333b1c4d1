package routers

import (
	"fmt"
	"sehatnama-service/internal/app/config"
	"sehatnama-service/internal/app/delivery/http/controllers"
	"sehatnama-service/internal/app/delivery/http/middlewares"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	uploadRateLimiter *middlewares.UploadRateLimiter,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	patientController *controllers.PatientController,
	appointmentController *controllers.AppointmentController,
	prescriptionController *controllers.PrescriptionController,
	labReportController *controllers.LabReportController,
	documentController *controllers.DocumentController,
	medicineController *controllers.MedicineController,
	hospitalController *controllers.HospitalController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.EndpointPrefix, "/"))
	versionPrefix := fmt.Sprintf("/%s", strings.Trim(internalConfig.App.Version, "/"))

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.Authenticate)

				r.Route("/users", func(r chi.Router) {
					attachUserRoutes(r, userController)
				})

				r.Route("/patients", func(r chi.Router) {
					attachPatientRoutes(r, uploadRateLimiter, patientController, appointmentController, prescriptionController, labReportController, documentController)
				})

				r.Route("/appointments", func(r chi.Router) {
					attachAppointmentRoutes(r, appointmentController)
				})

				r.Route("/prescriptions", func(r chi.Router) {
					attachPrescriptionRoutes(r, prescriptionController)
				})

				r.Route("/lab-reports", func(r chi.Router) {
					attachLabReportRoutes(r, labReportController)
				})

				r.Route("/documents", func(r chi.Router) {
					attachDocumentRoutes(r, documentController)
				})

				r.Route("/medicines", func(r chi.Router) {
					attachMedicineRoutes(r, medicineController)
				})

				r.Route("/hospitals", func(r chi.Router) {
					attachHospitalRoutes(r, hospitalController)
				})
			})
		})
	})
}
