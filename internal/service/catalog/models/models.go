package models

import (
	"time"

	"github.com/houseofbeauty/appointment-service/internal/domain"
)

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name string `json:"name"`
}

// UpdateServiceRequest запрос на переименование услуги
type UpdateServiceRequest struct {
	Name string `json:"name"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ServiceListResponse список услуг каталога
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// FromDomainService конвертирует domain модель в response
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}

// FromDomainServices конвертирует список domain моделей в response
func FromDomainServices(items []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(items)),
		Total:    len(items),
	}
	for _, item := range items {
		resp.Services = append(resp.Services, FromDomainService(item))
	}
	return resp
}
