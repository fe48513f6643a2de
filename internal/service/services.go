package service

import (
	"github.com/MKhiriev/customer-management/internal/config"
	"github.com/MKhiriev/customer-management/internal/logger"
	"github.com/MKhiriev/customer-management/internal/store"
	"github.com/MKhiriev/customer-management/internal/utils"
)

type Services struct {
	AuthService     AuthService
	CustomerService CustomerService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	idGenerator := utils.NewUUIDGenerator()
	verifier := NewStaticCredentialVerifier(cfg.App)

	return &Services{
		AuthService:     NewAuthService(verifier, idGenerator, cfg.App, logger),
		CustomerService: NewCustomerService(storages.CustomerRepository, idGenerator, logger),
	}
}
