package mailer

// ReservationEmail данные письма клиенту о записи
type ReservationEmail struct {
	To          string `json:"to"`
	ClientName  string `json:"client_name"`
	ServiceName string `json:"service_name"`
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
}

// sendRequest тело запроса к почтовому релею
type sendRequest struct {
	Template string           `json:"template"`
	Payload  ReservationEmail `json:"payload"`
}

// Шаблоны писем на стороне релея
const (
	templateConfirmed = "reservation_confirmed"
	templateCancelled = "reservation_cancelled"
)
