package main

import (
	"github.com/joho/godotenv"

	"github.com/shan-traders/storefront-backend/internal/app"
	"github.com/shan-traders/storefront-backend/pkg/logger"
)

//	@title			Shan Traders Storefront API
//	@version		1.0
//	@description	Каталог оптовой витрины: товары, корзина заявок, заявки на расценки, консоль администратора.

//	@BasePath	/api/v1

func main() {
	if err := godotenv.Load(); err != nil {
		// .env опционален: в контейнере конфигурация приходит из окружения.
		logger.NewSlogLogger().Infof("no .env file loaded: %v", err)
	}

	app.Run()
}
