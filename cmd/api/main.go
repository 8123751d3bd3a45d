package main

import (
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/logger"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("db_connect_failed", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Status{},
		&model.Customer{},
		&model.User{},
		&model.Product{},
		&model.Price{},
		&model.Order{},
		&model.Item{},
	); err != nil {
		log.Fatal("db_migrate_failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	itemRepo := infraRepo.NewItemGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	priceRepo := infraRepo.NewPriceGormRepository(gormDB)
	statusRepo := infraRepo.NewStatusGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	clock := &realClock{}
	hasher := usecase.NewBcryptPasswordHasher(12)

	//Usecase生成
	orderUC := usecase.NewOrderUsecase(orderRepo, customerRepo, userRepo, statusRepo, txManager, log)
	itemUC := usecase.NewItemUsecase(txManager, itemRepo, orderRepo, clock)
	productUC := usecase.NewProductUsecase(productRepo)
	priceUC := usecase.NewPriceUsecase(priceRepo, productRepo, clock)
	statusUC := usecase.NewStatusUsecase(statusRepo)
	customerUC := usecase.NewCustomerUsecase(customerRepo)
	userUC := usecase.NewUserUsecase(userRepo, hasher)

	//Handler生成
	handlers := server.Handlers{
		Order:    handler.NewOrderHandler(orderUC, log),
		Item:     handler.NewItemHandler(itemUC, log),
		Product:  handler.NewProductHandler(productUC, log),
		Price:    handler.NewPriceHandler(priceUC, log),
		Status:   handler.NewStatusHandler(statusUC, log),
		Customer: handler.NewCustomerHandler(customerUC, log),
		User:     handler.NewUserHandler(userUC, log),
	}

	//Server起動
	e := server.New(log, handlers)
	if err := server.Start(e, ":"+cfg.Port, log); err != nil {
		log.Fatal("server_stopped", zap.Error(err))
	}
}
