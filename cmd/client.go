package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/viper"

	"offer_letter/internal/notify"
	"offer_letter/internal/repository"
	"offer_letter/internal/repository/db"
	"offer_letter/internal/server"
	"offer_letter/internal/service"
	"offer_letter/internal/webhook"
)

// clientApp is the wired client side for one command invocation.
type clientApp struct {
	services *service.Service
	http     *webhook.Client
	db       *sql.DB
}

func (a *clientApp) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// openClient opens the local store and wires the client services from config.
func openClient() (*clientApp, error) {
	log := appLogger()

	hasher, err := service.NewHasher(viper.GetString("auth.hasher"))
	if err != nil {
		return nil, err
	}

	path := viper.GetString("db.path")
	conn, err := db.InitDB(path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	log.Debugw("local_store_opened", "path", path)

	// the proxy may itself wait the full upstream timeout
	client := webhook.NewClient(server.WriteTimeout(viper.GetDuration("webhook.timeout")))
	services := service.NewClientService(service.ClientDeps{
		Repos:    repository.NewSQLiteRepository(conn, log),
		Hasher:   hasher,
		Client:   client,
		ProxyURL: viper.GetString("proxy.url"),
		Notifier: notify.NewNotifier(viper.GetDuration("notify.duration")),
		Log:      log,
	})
	return &clientApp{services: services, http: client, db: conn}, nil
}
