// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package main

import (
	"context"
	"fmt"

	"github.com/tbalakin/dirbook/internal/adapter"
	"github.com/tbalakin/dirbook/internal/client"
	"github.com/tbalakin/dirbook/internal/config"
	"github.com/tbalakin/dirbook/internal/logger"
	"github.com/tbalakin/dirbook/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("dirbook-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	installID, err := store.InstallID(ctx, storages.KeyValue)
	if err != nil {
		log.Fatal().Err(err).Msg("resolve install id")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, installID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	auth := adapter.NewSessionAuth(serverAdapter)

	app, err := client.NewApp(ctx, *cfg, storages, serverAdapter, auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
