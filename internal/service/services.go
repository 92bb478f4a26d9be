package service

import (
	"github.com/MKhiriev/fin360/internal/adapter"
	"github.com/MKhiriev/fin360/internal/config"
	"github.com/MKhiriev/fin360/internal/crypto"
	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/store"
	"github.com/MKhiriev/fin360/models"
)

type Services struct {
	AuthService      AuthService
	StockService     StockService
	ChatService      ChatService
	UserService      UserService
	PortfolioService PortfolioService
	VoiceService     VoiceService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, adapters *adapter.Adapters, cipher crypto.Cipher, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	stocks := NewStockValidationService().Wrap(NewStockService(storages.StockRepository, cipher, logger))

	return &Services{
		AuthService:      NewAuthService(cfg.App, logger),
		StockService:     stocks,
		ChatService:      NewChatService(storages.ChatRepository, adapters.AI, cipher, logger),
		UserService:      NewUserService(storages.UserRepository, cipher, logger),
		PortfolioService: NewPortfolioService(stocks, logger),
		VoiceService:     NewVoiceService(adapters.Voice, logger),
		AppInfoService:   appInfo,
	}, nil
}
