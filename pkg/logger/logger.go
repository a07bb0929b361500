package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// Global logger
var sugar *zap.SugaredLogger

func init() {
	var logger *zap.Logger
	var err error

	if os.Getenv("APP_ENV") == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	sugar = logger.Sugar()
}

// L, uygulama genelinde kullanılan sugared logger'ı döner
func L() *zap.SugaredLogger {
	return sugar
}

// Sync, buffer'daki logları flush eder; main çıkarken çağrılır
func Sync() {
	_ = sugar.Sync()
}
