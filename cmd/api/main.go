package main

import (
	"context"
	"log"
	"time"

	"lookupapi/config"
	"lookupapi/controllers"
	"lookupapi/dbhelper"
	"lookupapi/services"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %s", err)
	}
	err = sentry.Init(sentry.ClientOptions{
		// Empty DSN disables reporting.
		Dsn:              cfg.Sentry.Dsn,
		Environment:      cfg.Env,
		Release:          cfg.Sentry.Release,
		Debug:            false,
		TracesSampleRate: cfg.Sentry.TracesSampleRate,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	localCache, err := services.NewBoltLocalCache(cfg.LocalCache.Path)
	if err != nil {
		log.Fatalf("local cache: %s", err)
	}
	defer localCache.Close()

	// The device keeps working offline: without the database every call
	// goes to the local cache.
	var remote services.RemoteStore
	db, err := dbhelper.SetupDB(cfg.Database)
	if err != nil {
		log.Printf("[DB] Remote store unavailable, running local only: %s", err)
		sentry.CaptureException(err)
	} else {
		remote = services.NewGormRemoteStore(db)
	}
	persistence := services.NewPersistence(remote, localCache)

	awsService := &services.AWSService{}
	if err := awsService.InitPresignClient(context.Background(), cfg.R2); err != nil {
		log.Printf("[R2] Failed to initialize presign client: %s", err)
		sentry.CaptureException(err)
	}
	urlCache, err := services.NewURLCacheService(awsService, cfg.R2.BucketName)
	if err != nil {
		log.Fatal("Failed to initialize URL cache service")
	}

	e := controllers.SetupServer(persistence, services.NewLookGenerator(nil), awsService, urlCache, cfg)
	e.Debug = cfg.Env == "local"
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
