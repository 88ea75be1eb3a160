package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

// @title Dummy Reports API
// @version 1.0
// @description Generator of synthetic geographic incident reports.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	rootCmd := newRootCmd(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatalf("Command failed: %v", err)
	}
}
