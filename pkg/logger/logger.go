package logger

import (
	"log"

	"go.uber.org/zap"
)

func New(env string) *zap.SugaredLogger {
	var (
		l   *zap.Logger
		err error
	)

	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	return l.Sugar()
}
