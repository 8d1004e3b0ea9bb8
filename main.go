package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"foodcourt/config"
	httpapi "foodcourt/internal/api/http"
	"foodcourt/internal/service"
	"foodcourt/internal/storage"
)

const checkoutLockTTL = 30 * time.Second

func main() {
	config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		logrus.Fatal("Failed to ensure schema: ", err)
	}

	cart := storage.NewRedisCart(rdb, checkoutLockTTL)

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter("orders"); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	qr := service.DefaultQRGenerator{BaseURL: os.Getenv("PUBLIC_BASE_URL")}

	handler := httpapi.NewHandler(
		service.NewAuthService(repo, config.SecretKey),
		service.NewCatalogService(repo),
		service.NewCartService(repo, cart),
		service.NewCheckoutService(repo, repo, cart, publisher, qr),
		service.NewOrderService(repo, qr),
	)

	router := httpapi.NewRouter(handler, config.SecretKey)

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}
	httpapi.StartServer(addr, router)
}
