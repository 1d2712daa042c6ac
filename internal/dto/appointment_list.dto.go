package dto

type AppointmentListDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	DurationMin int    `json:"duration"`
	Status      string `json:"status"`
	ClientName  string `json:"client_name"`
	Notes       string `json:"notes"`
}
