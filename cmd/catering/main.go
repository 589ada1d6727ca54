package main

import (
	"context"
	"fmt"

	"github.com/ardhitama/catering/internal/adapter/auth"
	"github.com/ardhitama/catering/internal/adapter/config"
	"github.com/ardhitama/catering/internal/adapter/handler/http"
	"github.com/ardhitama/catering/internal/adapter/logger"
	"github.com/ardhitama/catering/internal/adapter/storage"
	"github.com/ardhitama/catering/internal/adapter/storage/memory"
	"github.com/ardhitama/catering/internal/adapter/storage/repository"
	"github.com/ardhitama/catering/internal/core/port"
	"github.com/ardhitama/catering/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	var accounts port.AccountRepository
	var catalog port.CatalogRepository

	if conf.Database.Storage == config.StoragePostgres {
		db, err := storage.NewDBStorage(ctx, conf.Database)
		if err != nil {
			log.Error("database error", zap.Error(err))
			return
		}
		err = db.RunMigrations()
		if err != nil {
			log.Error("database migration error", zap.Error(err))
			return
		}

		repo, err := repository.NewRepository(db)
		if err != nil {
			log.Error("repository creating error", zap.Error(err))
			return
		}
		accounts = repo
		catalog = repo
	} else {
		accounts = memory.NewAccountRepository()
		catalog = memory.NewCatalogRepository(memory.DefaultMenu())
	}

	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(accounts, catalog, tokenService, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	catalogHandler, err := http.NewCatalogHandler(svc, log.Named("Catalog handler"))
	if err != nil {
		log.Error("catalog handler creating error", zap.Error(err))
		return
	}
	balanceHandler, err := http.NewBalanceHandler(svc, log.Named("Balance handler"))
	if err != nil {
		log.Error("balance handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService,
		userHandler, catalogHandler, balanceHandler, orderHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
