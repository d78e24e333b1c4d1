package routers

import (
	"sehatnama-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachMedicineRoutes(router chi.Router, medicineController *controllers.MedicineController) {
	router.Get("/", medicineController.FindAll)
	router.Post("/", medicineController.Create)
	router.Get("/{id}", medicineController.FindByID)
	router.Patch("/{id}", medicineController.Update)
	router.Put("/{id}", medicineController.Update)
	router.Delete("/{id}", medicineController.Delete)
}

func attachHospitalRoutes(router chi.Router, hospitalController *controllers.HospitalController) {
	router.Get("/", hospitalController.FindAll)
	router.Post("/", hospitalController.Create)
	router.Get("/{id}", hospitalController.FindByID)
	router.Patch("/{id}", hospitalController.Update)
	router.Put("/{id}", hospitalController.Update)
	router.Delete("/{id}", hospitalController.Delete)
}
