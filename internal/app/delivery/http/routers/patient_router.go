package routers

import (
	"sehatnama-service/internal/app/delivery/http/controllers"
	"sehatnama-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	uploadRateLimiter *middlewares.UploadRateLimiter,
	patientController *controllers.PatientController,
	appointmentController *controllers.AppointmentController,
	prescriptionController *controllers.PrescriptionController,
	labReportController *controllers.LabReportController,
	documentController *controllers.DocumentController,
) {
	router.Get("/", patientController.FindAll)
	router.Post("/", patientController.Register)
	router.Route("/{patientId}", func(r chi.Router) {
		r.Get("/", patientController.FindByID)
		r.Patch("/", patientController.Update)
		r.Put("/", patientController.Update)
		r.Delete("/", patientController.Delete)
		r.Get("/history", patientController.History)
		r.Get("/appointments", appointmentController.FindByPatientID)
		r.Get("/prescriptions", prescriptionController.FindByPatientID)
		r.Get("/lab-reports", labReportController.FindByPatientID)
		r.Get("/documents", documentController.FindByPatientID)
		r.With(uploadRateLimiter.Limit).Post("/documents", documentController.Upload)
	})
}
