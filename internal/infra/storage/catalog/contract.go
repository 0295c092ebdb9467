package catalog

import (
	"github.com/rubenautodetail/autodetailapp/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя из dbmetrics:
// поддерживает *sql.DB и обёртку *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
