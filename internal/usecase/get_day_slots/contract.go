package get_day_slots

import (
	"context"

	"github.com/houseofbeauty/appointment-service/internal/availability"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

// SnapshotProvider интерфейс сборки снапшота фактов расписания
type SnapshotProvider interface {
	BuildSnapshot(ctx context.Context, date types.DateString) (*availability.Snapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
