package identity

// StaffMember модель сотрудника из сервиса идентификации
type StaffMember struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
}

// listStaffResponse ответ на запрос списка сотрудников
type listStaffResponse struct {
	Staff []StaffMember `json:"staff"`
}

// ErrorResponse модель ошибки от сервиса идентификации
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
