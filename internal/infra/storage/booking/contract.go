package booking

import (
	"github.com/m04kA/Parish-BookingService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
