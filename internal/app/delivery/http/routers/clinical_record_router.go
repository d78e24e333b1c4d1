package routers

import (
	"sehatnama-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.Post("/", appointmentController.Create)
	router.Get("/today", appointmentController.FindToday)
	router.Get("/{id}", appointmentController.FindByID)
	router.Patch("/{id}", appointmentController.Update)
	router.Put("/{id}", appointmentController.Update)
	router.Delete("/{id}", appointmentController.Delete)
}

func attachPrescriptionRoutes(router chi.Router, prescriptionController *controllers.PrescriptionController) {
	router.Get("/", prescriptionController.FindAll)
	router.Post("/", prescriptionController.Create)
	router.Get("/{id}", prescriptionController.FindByID)
	router.Patch("/{id}", prescriptionController.Update)
	router.Put("/{id}", prescriptionController.Update)
	router.Delete("/{id}", prescriptionController.Delete)
}

func attachLabReportRoutes(router chi.Router, labReportController *controllers.LabReportController) {
	router.Get("/", labReportController.FindAll)
	router.Post("/", labReportController.Create)
	router.Get("/{id}", labReportController.FindByID)
	router.Patch("/{id}", labReportController.Update)
	router.Put("/{id}", labReportController.Update)
	router.Delete("/{id}", labReportController.Delete)
}

func attachDocumentRoutes(router chi.Router, documentController *controllers.DocumentController) {
	router.Get("/{id}", documentController.FindByID)
	router.Get("/{id}/file", documentController.Download)
	router.Delete("/{id}", documentController.Remove)
	router.Post("/{id}/process", documentController.Process)
}
