// Package service implements FuelEU Maritime compliance bookkeeping:
// compliance balance, the Article 20 bank ledger and Article 21 pooling.
package service

import (
	"context"
	"strings"

	"fueleu_compliance/internal/app/lock"
	"fueleu_compliance/internal/app/storage"

	"github.com/sirupsen/logrus"
)

type Service struct {
	store  storage.Store
	locker lock.Locker
}

func New(store storage.Store, locker lock.Locker) *Service {
	if locker == nil {
		locker = lock.NewLocal()
	}
	return &Service{
		store:  store,
		locker: locker,
	}
}

// critical runs fn inside one store transaction while holding the locks
// for keys. Every read-check-write sequence on a balance goes through here.
func (s *Service) critical(ctx context.Context, keys []string, fn func(tx storage.Store) error) error {
	release, err := s.locker.Lock(ctx, keys...)
	if err != nil {
		return persistence(err, "acquire lock")
	}
	defer release()

	return persistence(s.store.Atomic(ctx, fn), "transaction failed")
}

func checkShipYear(shipID string, year int) (string, error) {
	shipID = strings.TrimSpace(shipID)
	if shipID == "" {
		return "", validationf("shipId is required")
	}
	if year <= 0 {
		return "", validationf("year must be a positive number")
	}
	return shipID, nil
}

func shipLog(shipID string, year int) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{
		"ship_id": shipID,
		"year":    year,
	})
}
