package main

import (
	"github.com/Ekrem-A/Catalog.Api/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	// .env опционален, в контейнере конфигурация приходит из окружения
	_ = godotenv.Load()

	app.Run()
}
