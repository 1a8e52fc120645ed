package catalog

import (
	"context"
	"fmt"

	"github.com/acolella/BarberShop-BookingService/internal/service/catalog/models"
)

// Service витрина барбершопа: барберы и услуги
type Service struct {
	barberRepo  BarberRepository
	serviceRepo ServiceRepository
	log         Logger
}

func New(barberRepo BarberRepository, serviceRepo ServiceRepository, log Logger) *Service {
	return &Service{
		barberRepo:  barberRepo,
		serviceRepo: serviceRepo,
		log:         log,
	}
}

// ListBarbers возвращает активных барберов
func (s *Service) ListBarbers(ctx context.Context) (*models.BarberListResponse, error) {
	barbers, err := s.barberRepo.ListActive(ctx)
	if err != nil {
		s.log.Error("[catalog.ListBarbers] Failed to list barbers: %v", err)
		return nil, fmt.Errorf("%w: ListBarbers - failed to list barbers: %v", ErrInternal, err)
	}

	return models.FromDomainBarberList(barbers), nil
}

// ListServices возвращает все услуги
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.log.Error("[catalog.ListServices] Failed to list services: %v", err)
		return nil, fmt.Errorf("%w: ListServices - failed to list services: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}
