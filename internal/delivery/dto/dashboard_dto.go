package dto

type DashboardResponse struct {
	Patients            int64 `json:"patients"`
	AppointmentsToday   int64 `json:"appointments_today"`
	PendingAppointments int64 `json:"pending_appointments"`
	LowStockMedicines   int64 `json:"low_stock_medicines"`
}
