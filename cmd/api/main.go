package main

import (
	"marketplace/internal/config"
	"marketplace/internal/domain/model"
	"marketplace/internal/handler"
	"marketplace/internal/infra/db"
	infraRepo "marketplace/internal/infra/repository"
	"marketplace/internal/server"
	"marketplace/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Store{},
		&model.Product{},
		&model.Discount{},
		&model.Order{},
		&model.OrderItem{},
		&model.Rate{},
		&model.Notification{},
	); err != nil {
		logger.Fatal("auto migrate", zap.Error(err))
	}

	//Repository（GORM実装）生成
	txManager := infraRepo.NewTxManagerGorm(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	discountRepo := infraRepo.NewDiscountGormRepository(gormDB)
	notificationRepo := infraRepo.NewNotificationGormRepository(gormDB)

	//Usecase生成
	notifier := usecase.NewNotifier(notificationRepo, logger)
	orderUC := usecase.NewOrderUsecase(txManager, productRepo, notifier)
	ratingUC := usecase.NewRatingUsecase(txManager, notifier)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	discountUC := usecase.NewDiscountUsecase(discountRepo)

	//Handler生成
	orderH := handler.NewOrderHandler(orderUC, ratingUC)
	notificationH := handler.NewNotificationHandler(notificationUC)
	discountH := handler.NewDiscountHandler(discountUC)

	//Server起動
	e := server.New()
	server.RegisterRoutes(e, orderH, notificationH, discountH)

	addr := ":" + cfg.Port
	logger.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.GoEnv))
	if err := server.Start(e, addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
