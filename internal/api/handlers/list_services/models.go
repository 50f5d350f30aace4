package list_services

import "github.com/m04kA/essenza-booking/internal/domain"

// ServiceResponse процедура каталога
type ServiceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

// ServiceListResponse каталог процедур в порядке отображения
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices конвертирует каталог в HTTP модель
func FromDomainServices(services []domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, ServiceResponse{
			ID:       s.ID,
			Name:     s.Name,
			Price:    s.Price,
			Currency: s.Currency,
		})
	}
	return &ServiceListResponse{Services: result}
}
