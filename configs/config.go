package configs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	MongoURI        string
	DBName          string
	BooksServiceURL string
	MaxMemberLoans  int
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	maxMemberLoans := 2
	if val := os.Getenv("MAX_MEMBER_LOANS"); val != "" {
		_, err := fmt.Sscanf(val, "%d", &maxMemberLoans)
		if err != nil {
			log.Fatalf("Invalid MAX_MEMBER_LOANS: %v", err)
		}
	}

	return Config{
		Port:            os.Getenv("PORT"),
		MongoURI:        os.Getenv("MONGO_URI"),
		DBName:          os.Getenv("DB_NAME"),
		BooksServiceURL: os.Getenv("BOOKS_SERVICE_URL"),
		MaxMemberLoans:  maxMemberLoans,
	}
}
