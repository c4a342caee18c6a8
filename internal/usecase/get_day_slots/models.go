package get_day_slots

import (
	"github.com/houseofbeauty/appointment-service/internal/domain"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

// Request модель запроса ленты слотов на дату
type Request struct {
	Date   types.DateString         // Дата, для которой строится лента
	Source domain.ReservationSource // Откуда смотрят: публичный виджет или панель сотрудника
}

// Slot один слот ленты
type Slot struct {
	Time        types.TimeString // Время начала слота
	Unavailable bool             // Слот занят или некому его обслужить
}

// Response модель ответа с лентой слотов
type Response struct {
	Date      types.DateString // Запрошенная дата
	Offerable bool             // Может ли дата вообще предлагаться к записи
	StartHour int              // Начало окна работы
	EndHour   int              // Конец окна работы
	Slots     []Slot           // Почасовая лента внутри окна (пустая, если дата не предлагается)
}
