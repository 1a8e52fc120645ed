package models

import "github.com/acolella/BarberShop-BookingService/internal/domain"

// BarberResponse данные барбера для витрины
type BarberResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Specialty string  `json:"specialty"`
	PhotoURL  *string `json:"photoUrl,omitempty"`
}

// BarberListResponse список барберов
type BarberListResponse struct {
	Barbers []BarberResponse `json:"barbers"`
}

// ServiceResponse данные услуги для витрины
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainBarberList конвертирует список domain моделей в DTO
func FromDomainBarberList(barbers []*domain.Barber) *BarberListResponse {
	resp := &BarberListResponse{
		Barbers: make([]BarberResponse, 0, len(barbers)),
	}

	for _, b := range barbers {
		if b == nil {
			continue
		}
		resp.Barbers = append(resp.Barbers, BarberResponse{
			ID:        b.ID,
			Name:      b.Name,
			Specialty: b.Specialty,
			PhotoURL:  b.PhotoURL,
		})
	}

	return resp
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, s := range services {
		if s == nil {
			continue
		}
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		})
	}

	return resp
}
