package list_services

import "github.com/m04kA/essenza-booking/internal/domain"

type ServiceCatalog interface {
	List() []domain.Service
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
