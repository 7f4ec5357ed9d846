package equipment

import "github.com/m04kA/SMC-EquipmentBooking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
