package reservation

import (
	"github.com/babypavshiy/GameClubBooking/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics:
// репозиторий одинаково работает поверх *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
