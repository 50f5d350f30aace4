package domain

// Значения по умолчанию для генерации рабочих часов (форма администратора)
const (
	DefaultWorkingHoursFrom    = "09:00"
	DefaultWorkingHoursTo      = "17:00"
	DefaultSlotIntervalMinutes = 30
)
