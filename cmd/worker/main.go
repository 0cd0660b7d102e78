package main

import (
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"go-market-api/internal/app"
)

func main() {
	_ = godotenv.Load()

	if err := app.RunWorker(); err != nil {
		log.Fatal(err)
	}
}
