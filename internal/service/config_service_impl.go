package service

import (
	"context"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/storage"
)

type configService struct {
	store *storage.Store
}

// NewConfigService returns the per-account settings facade.
func NewConfigService(store *storage.Store) ConfigService {
	return &configService{store: store}
}

func (s *configService) Get(ctx context.Context, account domain.AccountID) (domain.AccountConfig, error) {
	var cfg domain.AccountConfig
	err := s.store.View(ctx, func(doc *storage.Document) error {
		cfg = doc.Config(account)
		return nil
	})
	return cfg, err
}

func (s *configService) Set(ctx context.Context, account domain.AccountID, cfg domain.AccountConfig) error {
	if _, err := domain.ParseAccountID(string(account)); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	return s.store.Update(ctx, func(doc *storage.Document) error {
		doc.Account(account).Config = &cfg
		return nil
	})
}
