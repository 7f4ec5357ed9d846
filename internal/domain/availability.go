package domain

// EquipmentAvailability free units of one equipment for a time window
type EquipmentAvailability struct {
	EquipmentID int64
	Name        string
	Type        string
	FreeUnits   int
}
