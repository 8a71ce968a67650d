package main

// go run cmd/fueleu/main.go

import (
	"context"
	"io"

	"fueleu_compliance/internal/app/config"
	"fueleu_compliance/internal/app/dsn"
	"fueleu_compliance/internal/app/handler"
	"fueleu_compliance/internal/app/lock"
	"fueleu_compliance/internal/app/repository"
	"fueleu_compliance/internal/app/service"
	"fueleu_compliance/internal/app/storage"
	"fueleu_compliance/internal/app/storage/memory"
	"fueleu_compliance/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	_ "fueleu_compliance/docs" // Swagger docs
)

// @title FuelEU Maritime Compliance API
// @version 1.0
// @description Compliance balance, banking (Article 20) and pooling (Article 21).
// @BasePath /
func main() {
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	var store storage.Store
	switch conf.Storage {
	case config.StorageMemory:
		logrus.Warn("using in-memory storage, data is lost on restart")
		store = memory.New()
	default:
		rep, errRep := repository.New(dsn.FromEnv())
		if errRep != nil {
			logrus.Fatalf("error initializing repository: %v", errRep)
		}
		defer rep.Close()
		store = rep
	}

	var locker lock.Locker
	switch conf.LockBackend {
	case config.LockRedis:
		redisLock, errLock := lock.NewRedis(context.Background(), conf.RedisEndpoint, conf.RedisPassword, conf.LockTTL, conf.LockWait)
		if errLock != nil {
			logrus.Fatalf("error connecting to redis: %v", errLock)
		}
		defer redisLock.Close()
		locker = redisLock
	default:
		locker = lock.NewLocal()
	}

	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = io.Discard
	router := gin.New()
	router.Use(gin.Recovery())

	hand := handler.NewHandler(service.New(store, locker))

	application := pkg.NewApp(conf, router, hand)
	application.RunApp()
}
