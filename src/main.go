package main

import (
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"personnel-api/src/audit"
	"personnel-api/src/auth"
	"personnel-api/src/credentials"
	"personnel-api/src/database"
	"personnel-api/src/logger"
	"personnel-api/src/personnel"
	"personnel-api/src/session"
)

func main() {
	_ = godotenv.Load()

	logger.InitDefaultLogger()
	log := logger.Default()
	log.Info("Logger initialized")

	config := loadAppConfig("config.json")

	db, err := database.Connect(config.DatabaseDriver, config.DatabaseDSN)
	if err != nil {
		log.Fatal(err, "Cannot establish database connection")
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal(err, "Migrating database failed")
	}

	hasher := credentials.NewBcryptHasher()
	if err := database.EnsureDefaultDirector(db, hasher, config.DefaultDirectorCorreo, config.DefaultDirectorPassword); err != nil {
		log.Fatal(err, "Default director bootstrap failed")
	}

	sessions := session.NewMemoryStore(config.SessionTTL)
	sweeper := session.NewSweeper(sessions)
	sweeper.Start()
	defer sweeper.Stop()

	var publisher audit.Publisher = audit.NopPublisher{}
	if config.RabbitmqURL != "" {
		conn, err := audit.ConnectRabbit(config.RabbitmqURL)
		if err != nil {
			log.Error(err, "RabbitMQ unreachable, audit entries will only be persisted locally")
		} else {
			defer conn.Close()
			publisher, err = audit.NewRabbitPublisher(conn, config.RabbitmqExchange, config.RabbitmqRoutingKey)
			if err != nil {
				log.Fatal(err, "Could not open RabbitMQ channel for audit publisher")
			}
			log.Info("Audit publisher connected to RabbitMQ")
		}
	}
	recorder := audit.NewRecorder(audit.NewRepository(db), publisher)
	logger.AddSink(log, audit.NewLoggerSink(publisher))

	authHandler := auth.Build(db, sessions, hasher, recorder)
	personnelHandler := personnel.Build(db, hasher, recorder)
	auditHandler := audit.NewHandler(audit.NewRepository(db))

	router := buildRouter("templates/*.html", sessions, authHandler, personnelHandler, auditHandler)

	server := &http.Server{
		Addr:         config.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Infof("REST API is now listening on: %s", config.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err, "HTTP server stopped")
	}
}
