package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI          string
	DBName            string
	BooksCollection   string
	RunLogsCollection string
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:            getEnv("DB_NAME", "plp_bookstore"),
		BooksCollection:   getEnv("COLLECTION", "books"),
		RunLogsCollection: getEnv("RUN_LOGS_COLLECTION", "run_logs"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
