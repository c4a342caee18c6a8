package update_reservation_status

import (
	"time"

	"github.com/houseofbeauty/appointment-service/internal/domain"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

// Request модель запроса на смену статуса записи
type Request struct {
	ReservationID int64                    // ID записи
	Status        domain.ReservationStatus // Целевой статус
}

// Response модель ответа с обновленной записью
type Response struct {
	ID        int64            // ID записи
	StaffID   *string          // Назначенный сотрудник (nil после отмены)
	Date      types.DateString // Дата записи
	TimeSlot  types.TimeString // Время начала
	Status    string           // Новый статус
	UpdatedAt time.Time        // Время обновления
}
