package get_day_slots

import (
	"context"
	"fmt"

	"github.com/houseofbeauty/appointment-service/internal/availability"
	"github.com/houseofbeauty/appointment-service/internal/domain"
)

// UseCase use case построения ленты слотов на дату
type UseCase struct {
	snapshots SnapshotProvider
	resolver  *availability.Resolver
	// Fallback-окна на случай, когда для даты нет ни особого дня,
	// ни недельного расписания. У виджета окно шире, чем у панели.
	publicWindow    availability.DayWindow
	dashboardWindow availability.DayWindow
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	snapshots SnapshotProvider,
	resolver *availability.Resolver,
	publicWindow availability.DayWindow,
	dashboardWindow availability.DayWindow,
	logger Logger,
) *UseCase {
	return &UseCase{
		snapshots:       snapshots,
		resolver:        resolver,
		publicWindow:    publicWindow,
		dashboardWindow: dashboardWindow,
		logger:          logger,
	}
}

// Execute выполняет use case построения ленты слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: date=%s, source=%s", req.Date, req.Source)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем снапшот фактов расписания на дату
	snapshot, err := uc.snapshots.BuildSnapshot(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to build snapshot for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to build snapshot: %v", ErrInternal, err)
	}

	// 3. Проверяем, предлагается ли дата вообще
	if !uc.resolver.IsDateOfferable(req.Date, snapshot.Today, snapshot.GlobalRange, snapshot.WeekdayClosed) {
		uc.logger.Info("GetDaySlots: date %s is not offerable", req.Date)
		return &Response{Date: req.Date, Offerable: false, Slots: []Slot{}}, nil
	}

	// 4. Вычисляем окно работы на дату
	fallback := uc.publicWindow
	if req.Source == domain.SourceDashboard {
		fallback = uc.dashboardWindow
	}
	window := uc.resolver.ComputeDayWindow(req.Date, snapshot.WorkingHours, snapshot.SpecialDays, fallback)

	// 5. Строим почасовую ленту внутри окна
	resolved := uc.resolver.DaySlots(req.Date, window, snapshot)

	slots := make([]Slot, 0, len(resolved))
	unavailable := 0
	for _, item := range resolved {
		if item.Unavailable {
			unavailable++
		}
		slots = append(slots, Slot{Time: item.Time, Unavailable: item.Unavailable})
	}

	uc.logger.Info("GetDaySlots: date=%s, window=%d-%d, slots=%d, unavailable=%d",
		req.Date, window.StartHour, window.EndHour, len(slots), unavailable)

	return &Response{
		Date:      req.Date,
		Offerable: true,
		StartHour: window.StartHour,
		EndHour:   window.EndHour,
		Slots:     slots,
	}, nil
}
