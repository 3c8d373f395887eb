package mockapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kuhealthcare/portal/pkg/logging"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	Logger   *logging.Logger
	Store    *Store
	Registry *prometheus.Registry
}

// NewRouter creates a Chi router with all backend routes configured.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Store == nil {
		cfg.Store = NewStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	h := NewHandler(cfg.Store, cfg.Logger)
	m := NewMetrics(cfg.Registry)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(cfg.Logger))
	r.Use(m.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))

	r.Get("/login", h.Login)
	r.Get("/all_patients", h.AllPatients)
	r.Get("/all_staff", h.AllStaff)
	r.Get("/patients_of_staff", h.PatientsOfStaff)
	r.Get("/add_patient", h.AddPatient)
	r.Get("/add_staff", h.AddStaff)
	r.Get("/assign_staff_day", h.AssignStaffDay)

	r.Get("/patient_appointments", h.PatientAppointments)
	r.Get("/staff_appointments", h.StaffAppointments)
	r.Post("/add_appointment", h.AddAppointment)

	r.Get("/get_emergencies", h.GetEmergencies)
	r.Get("/add_emergency", h.AddEmergency)
	r.Get("/set_emergency_status", h.SetEmergencyStatus)

	r.Get("/get_medications", h.GetMedications)
	r.Get("/get_equipment", h.GetEquipment)
	r.Get("/get_consumables", h.GetConsumables)
	r.Post("/add_medication", h.AddMedication)
	r.Post("/add_equipment", h.AddEquipment)
	r.Post("/add_consumable", h.AddConsumable)

	r.Get("/get_patient_medical_records", h.PatientMedicalRecords)
	r.Get("/get_patient_prescriptions", h.PatientPrescriptions)
	r.Post("/add_medical_record", h.AddMedicalRecord)
	r.Post("/add_prescription", h.AddPrescription)

	r.Get("/get_billing", h.GetBilling)
	r.Get("/get_outstanding_balance", h.GetOutstandingBalance)
	r.Post("/settle_payments", h.SettlePayments)
	r.Get("/update_insurance", h.UpdateInsurance)

	return r
}

// requestLogger emits one structured log line per completed request.
// It must be installed after middleware.RequestID so the logged ID is
// the same one chi propagates through the request context.
func requestLogger(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := middleware.GetReqID(r.Context())
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"request_id", reqID,
				"remote_ip", r.RemoteAddr,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
