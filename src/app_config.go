package main

import (
	"fmt"
	"os"
	"time"

	"personnel-api/src/logger"
	"personnel-api/src/utilities"
)

type ConfigJson struct {
	DatabaseDriver        string `json:"database_driver"`
	DatabaseDSN           string `json:"database_dsn"`
	HttpPort              uint16 `json:"http_port"`
	SessionTTLHours       int    `json:"session_ttl_hours"`
	DefaultDirectorCorreo string `json:"default_director_correo"`
	RabbitmqURL           string `json:"rabbitmq_url"`
	RabbitmqExchange      string `json:"rabbitmq_exchange"`
	RabbitmqRoutingKey    string `json:"rabbitmq_routing_key"`
}

type Config struct {
	DatabaseDriver          string
	DatabaseDSN             string
	Addr                    string
	SessionTTL              time.Duration
	DefaultDirectorCorreo   string
	DefaultDirectorPassword string
	RabbitmqURL             string
	RabbitmqExchange        string
	RabbitmqRoutingKey      string
}

func (cj ConfigJson) ConvertToDomain() Config {
	if cj.DatabaseDriver == "" {
		cj.DatabaseDriver = "sqlite"
	}
	if cj.DatabaseDSN == "" {
		cj.DatabaseDSN = "personnel.db"
	}
	if cj.HttpPort == 0 {
		cj.HttpPort = 8080
	}
	if cj.SessionTTLHours == 0 {
		cj.SessionTTLHours = 12
	}

	return Config{
		DatabaseDriver:        cj.DatabaseDriver,
		DatabaseDSN:           cj.DatabaseDSN,
		Addr:                  fmt.Sprintf("0.0.0.0:%d", cj.HttpPort),
		SessionTTL:            time.Duration(cj.SessionTTLHours) * time.Hour,
		DefaultDirectorCorreo: cj.DefaultDirectorCorreo,
		RabbitmqURL:           cj.RabbitmqURL,
		RabbitmqExchange:      cj.RabbitmqExchange,
		RabbitmqRoutingKey:    cj.RabbitmqRoutingKey,
	}
}

// loadAppConfig reads config.json and applies environment overrides for the
// values that are secrets or deployment-specific.
func loadAppConfig(filePath string) Config {
	log := logger.Default()
	log.Infof("Preparing to load config from %s ...", filePath)

	config, err := utilities.ReadConfig[ConfigJson, Config](filePath)
	if err != nil {
		log.Warnf("Could not read %s (%v), continuing with defaults", filePath, err)
		config = ConfigJson{}.ConvertToDomain()
	}

	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		config.DatabaseDriver = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		config.RabbitmqURL = v
	}

	config.DefaultDirectorPassword = os.Getenv("DEFAULT_DIRECTOR_PASSWORD")
	if config.DefaultDirectorPassword == "" {
		// Known seed credential; deployments are expected to override it.
		config.DefaultDirectorPassword = "admin123"
	}

	log.Info("Config successfully loaded.")
	return config
}
