package main

import (
	"log"
	"time"

	"vapestore/internal/config"
	"vapestore/internal/handler"
	"vapestore/internal/infra/db"
	infraRepo "vapestore/internal/infra/repository"
	"vapestore/internal/server"
	"vapestore/internal/usecase"
	"vapestore/internal/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	if err := db.SeedProducts(gormDB); err != nil {
		log.Fatalf("db seed: %v", err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	checkoutRepo := infraRepo.NewCheckoutGormRepository(gormDB)
	ageVerRepo := infraRepo.NewAgeVerificationGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	authorizer := usecase.NewSimulatedPaymentAuthorizer(idGen)
	checkoutValidator := validator.NewCheckoutValidator()

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo)
	complianceUC := usecase.NewComplianceUsecase(cfg, ageVerRepo, clock)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, authorizer, idGen, clock)
	checkoutUC := usecase.NewCheckoutUsecase(checkoutRepo, cartUC, orderUC, checkoutValidator)

	//Handler生成
	handlers := server.Handlers{
		Product:    handler.NewProductHandler(productUC),
		Compliance: handler.NewComplianceHandler(complianceUC),
		Cart:       handler.NewCartHandler(cartUC),
		Checkout:   handler.NewCheckoutHandler(checkoutUC),
		Order:      handler.NewOrderHandler(orderUC),
	}

	//Server起動
	e := server.New(cfg, handlers)
	if err := server.Start(e, ":"+cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
