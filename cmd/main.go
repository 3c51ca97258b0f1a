package main

import (
	"go-vet-clinic/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize vet clinic API: %v", err)
	}

	// Blocks until SIGINT/SIGTERM, then shuts down gracefully
	app.Run()
}
