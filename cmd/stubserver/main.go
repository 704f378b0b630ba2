// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package main

import (
	"fmt"

	"github.com/tbalakin/dirbook/internal/config"
	"github.com/tbalakin/dirbook/internal/logger"
	"github.com/tbalakin/dirbook/internal/stubserver"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("dirbook-stubserver")
	cfg, err := config.GetStubServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	handler := stubserver.NewHandler(cfg, log)
	server := stubserver.NewServer(handler, cfg, log)

	server.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
