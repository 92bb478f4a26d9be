// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fin360/internal/config"
	"github.com/MKhiriev/fin360/internal/logger"
)

// Storages bundles the repositories of one backend.
type Storages struct {
	StockRepository StockRepository
	ChatRepository  ChatRepository
	UserRepository  UserRepository

	closeFn func(ctx context.Context) error
}

// NewStorages connects to the backend selected by cfg.Driver, applies
// migrations for SQL backends and returns its repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.DriverPostgres, config.DriverSQLite:
		var (
			db  *DB
			err error
		)
		if cfg.Driver == config.DriverPostgres {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		}
		if err != nil {
			return nil, err
		}

		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = db.Close()
			return nil, err
		}

		return newSQLStorages(db, log), nil
	case config.DriverMongo:
		m, err := NewConnectMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		return newMongoStorages(m, log), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		StockRepository: NewStockRepository(db, log),
		ChatRepository:  NewChatRepository(db, log),
		UserRepository:  NewUserRepository(db, log),
		closeFn: func(context.Context) error {
			return db.Close()
		},
	}
}

func newMongoStorages(m *Mongo, log *logger.Logger) *Storages {
	return &Storages{
		StockRepository: NewMongoStockRepository(m, log),
		ChatRepository:  NewMongoChatRepository(m, log),
		UserRepository:  NewMongoUserRepository(m, log),
		closeFn:         m.Close,
	}
}

// Close releases the backend connection.
func (s *Storages) Close(ctx context.Context) error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}
