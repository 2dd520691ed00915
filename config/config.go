package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config đọc biến môi trường, ưu tiên file .env nếu có
func Config(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file found, using system environment")
	}
	return os.Getenv(key)
}
