package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBPort              string
	Port                string
	JWTSecret           string
	RazorpayKeyID       string
	RazorpayKeySecret   string
	KafkaBrokers        string
	NotificationTopic   string
	LowStockThreshold   string
	EmailHost           string
	EmailPort           string
	EmailUsername       string
	EmailPassword       string
	EmailFrom           string
	AppBaseURL          string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		Port:              os.Getenv("APP_PORT"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		KafkaBrokers:      os.Getenv("KAFKA_BROKERS"),
		NotificationTopic: os.Getenv("NOTIFICATION_TOPIC"),
		LowStockThreshold: os.Getenv("LOW_STOCK_THRESHOLD"),
		EmailHost:         os.Getenv("EMAIL_HOST"),
		EmailPort:         os.Getenv("EMAIL_PORT"),
		EmailUsername:     os.Getenv("EMAIL_USERNAME"),
		EmailPassword:     os.Getenv("EMAIL_PASSWORD"),
		EmailFrom:         os.Getenv("EMAIL_USERNAME"),
		AppBaseURL:        os.Getenv("APP_BASE_URL"),
	}

}

var LoadENV = LoadEnv()
