package http

import (
	"net/http"

	"go-vet-clinic/internal/delivery/http/handler"
	"go-vet-clinic/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	doctorHandler      *handler.DoctorHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	catalogHandler     *handler.CatalogHandler
	recordHandler      *handler.RecordHandler
	auditLogHandler    *handler.AuditLogHandler
	dashboardHandler   *handler.DashboardHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	catalogHandler *handler.CatalogHandler,
	recordHandler *handler.RecordHandler,
	auditLogHandler *handler.AuditLogHandler,
	dashboardHandler *handler.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		doctorHandler:      doctorHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		catalogHandler:     catalogHandler,
		recordHandler:      recordHandler,
		auditLogHandler:    auditLogHandler,
		dashboardHandler:   dashboardHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

// protect authenticates the request and then applies the role check
func (r *Router) protect(h http.HandlerFunc, role func(http.Handler) http.Handler) http.Handler {
	return r.authMiddleware.Authenticate(role(h))
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/verify-email", r.authHandler.VerifyEmail).Methods(http.MethodPost)
	auth.HandleFunc("/resend-verification", r.authHandler.ResendVerification).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	auth.Handle("/logout", r.protect(r.authHandler.Logout, middleware.RequireStaff)).Methods(http.MethodPost)
	auth.Handle("/logout-all", r.protect(r.authHandler.LogoutAll, middleware.RequireStaff)).Methods(http.MethodPost)
	auth.Handle("/me", r.protect(r.authHandler.GetCurrentUser, middleware.RequireStaff)).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.authHandler.CreateStaff).Methods(http.MethodPost)
	admin.HandleFunc("/dashboard", r.dashboardHandler.GetSummary).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Doctors
	api.Handle("/doctors", r.protect(r.doctorHandler.GetAllDoctors, middleware.RequireStaff)).Methods(http.MethodGet)
	api.Handle("/doctors/me", r.protect(r.doctorHandler.UpdateSelf, middleware.RequireDoctor)).Methods(http.MethodPut)
	api.Handle("/doctors/{id}", r.protect(r.doctorHandler.GetDoctor, middleware.RequireStaff)).Methods(http.MethodGet)

	// Patients
	api.Handle("/patients", r.protect(r.patientHandler.ListPatients, middleware.RequireStaff)).Methods(http.MethodGet)
	api.Handle("/patients", r.protect(r.patientHandler.CreatePatient, middleware.RequireReceptionist)).Methods(http.MethodPost)
	api.Handle("/patients/{id}", r.protect(r.patientHandler.GetPatient, middleware.RequireStaff)).Methods(http.MethodGet)
	api.Handle("/patients/{id}", r.protect(r.patientHandler.UpdatePatient, middleware.RequireReceptionist)).Methods(http.MethodPut)
	api.Handle("/patients/{id}", r.protect(r.patientHandler.DeletePatient, middleware.RequireReceptionist)).Methods(http.MethodDelete)

	// Medical records
	api.Handle("/patients/{id}/diagnoses", r.protect(r.recordHandler.ListDiagnoses, middleware.RequireStaff)).Methods(http.MethodGet)
	api.Handle("/patients/{id}/diagnoses", r.protect(r.recordHandler.CreateDiagnosis, middleware.RequireDoctor)).Methods(http.MethodPost)
	api.Handle("/patients/{id}/prescriptions", r.protect(r.recordHandler.ListPrescriptions, middleware.RequireStaff)).Methods(http.MethodGet)
	api.Handle("/patients/{id}/prescriptions", r.protect(r.recordHandler.CreatePrescription, middleware.RequireDoctor)).Methods(http.MethodPost)
	api.Handle("/patients/{id}/weights", r.protect(r.recordHandler.GetWeightHistory, middleware.RequireStaff)).Methods(http.MethodGet)
	api.Handle("/patients/{id}/weights", r.protect(r.recordHandler.RecordWeight, middleware.RequireStaff)).Methods(http.MethodPost)
	api.Handle("/prescriptions/{id}", r.protect(r.recordHandler.GetPrescription, middleware.RequireStaff)).Methods(http.MethodGet)

	// Appointments
	api.Handle("/appointments", r.protect(r.appointmentHandler.ListAppointments, middleware.RequireStaff)).Methods(http.MethodGet)
	api.Handle("/appointments", r.protect(r.appointmentHandler.CreateAppointment, middleware.RequireReceptionist)).Methods(http.MethodPost)
	api.Handle("/appointments/{id}", r.protect(r.appointmentHandler.GetAppointment, middleware.RequireStaff)).Methods(http.MethodGet)
	api.Handle("/appointments/{id}", r.protect(r.appointmentHandler.UpdateAppointment, middleware.RequireReceptionist)).Methods(http.MethodPut)
	api.Handle("/appointments/{id}/status", r.protect(r.appointmentHandler.UpdateStatus, middleware.RequireStaff)).Methods(http.MethodPatch)
	api.Handle("/appointments/{id}/confirm", r.protect(r.appointmentHandler.Confirm, middleware.RequireReceptionist)).Methods(http.MethodPost)
	api.Handle("/appointments/{id}/complete", r.protect(r.appointmentHandler.Complete, middleware.RequireAdminOrDoctor)).Methods(http.MethodPost)
	api.Handle("/appointments/{id}/cancel", r.protect(r.appointmentHandler.Cancel, middleware.RequireReceptionist)).Methods(http.MethodPost)

	// Catalogs: staff read, admin write
	api.Handle("/diseases", r.protect(r.catalogHandler.ListDiseases, middleware.RequireStaff)).Methods(http.MethodGet)
	api.Handle("/diseases", r.protect(r.catalogHandler.CreateDisease, middleware.RequireAdmin)).Methods(http.MethodPost)
	api.Handle("/diseases/{id:[0-9]+}", r.protect(r.catalogHandler.GetDisease, middleware.RequireStaff)).Methods(http.MethodGet)
	api.Handle("/diseases/{id:[0-9]+}", r.protect(r.catalogHandler.UpdateDisease, middleware.RequireAdmin)).Methods(http.MethodPut)
	api.Handle("/diseases/{id:[0-9]+}", r.protect(r.catalogHandler.DeleteDisease, middleware.RequireAdmin)).Methods(http.MethodDelete)
	api.Handle("/medicines", r.protect(r.catalogHandler.ListMedicines, middleware.RequireStaff)).Methods(http.MethodGet)
	api.Handle("/medicines", r.protect(r.catalogHandler.CreateMedicine, middleware.RequireAdmin)).Methods(http.MethodPost)
	api.Handle("/medicines/{id:[0-9]+}", r.protect(r.catalogHandler.GetMedicine, middleware.RequireStaff)).Methods(http.MethodGet)
	api.Handle("/medicines/{id:[0-9]+}", r.protect(r.catalogHandler.UpdateMedicine, middleware.RequireAdmin)).Methods(http.MethodPut)
	api.Handle("/medicines/{id:[0-9]+}", r.protect(r.catalogHandler.DeleteMedicine, middleware.RequireAdmin)).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
