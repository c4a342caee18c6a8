package create_reservation

import (
	"time"

	"github.com/houseofbeauty/appointment-service/internal/domain"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Source          domain.ReservationSource // Публичный виджет или панель сотрудника
	Date            types.DateString         // Дата записи
	TimeSlot        types.TimeString         // Время начала слота (например, "10:00")
	ServiceID       int64                    // ID услуги из каталога
	ClientName      string                   // Фамилия клиента
	ClientFirstname string                   // Имя клиента
	ClientEmail     string                   // Email клиента
	ClientPhone     string                   // Телефон клиента
	Description     *string                  // Комментарий клиента (опционально)
	PaymentIntentID *string                  // Платежное намерение (обязательно для виджета)
	IdempotencyKey  string                   // Ключ идемпотентности (генерируется, если пуст)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	StaffID         *string          // Назначенный сотрудник
	ServiceID       int64            // ID услуги
	ServiceName     string           // Название услуги (денормализовано)
	Date            types.DateString // Дата записи
	TimeSlot        types.TimeString // Время начала
	Status          string           // Статус записи
	ClientName      string           // Фамилия клиента
	ClientFirstname string           // Имя клиента
	ClientEmail     string           // Email клиента
	ClientPhone     string           // Телефон клиента
	Description     *string          // Комментарий
	IdempotencyKey  string           // Ключ идемпотентности записи
	Replayed        bool             // Запись уже существовала, возвращён прежний результат
	CreatedAt       time.Time        // Время создания
	UpdatedAt       time.Time        // Время обновления
}

// fromDomain конвертирует domain модель в response
func fromDomain(r *domain.Reservation, replayed bool) *Response {
	return &Response{
		ID:              r.ID,
		StaffID:         r.StaffID,
		ServiceID:       r.ServiceID,
		ServiceName:     r.ServiceName,
		Date:            r.Date,
		TimeSlot:        r.TimeSlot,
		Status:          string(r.Status),
		ClientName:      r.ClientName,
		ClientFirstname: r.ClientFirstname,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		Description:     r.Description,
		IdempotencyKey:  r.IdempotencyKey,
		Replayed:        replayed,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
