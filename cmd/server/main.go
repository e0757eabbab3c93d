package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"hrms-backend/internal/auth"
	"hrms-backend/internal/config"
	"hrms-backend/internal/db"
	"hrms-backend/internal/email"
	"hrms-backend/internal/routes"
	"hrms-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	database, err := db.Open(cfg.DbDsn)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}

	employeeStore := store.NewGormStore(database)
	mailer := email.NewMailer(email.Config{
		Host:     cfg.SmtpHost,
		Port:     cfg.SmtpPort,
		Username: cfg.SmtpUser,
		Password: cfg.SmtpPass,
		From:     cfg.SmtpFrom,
	})
	codec := auth.NewTokenCodec(
		cfg.JwtSecret,
		time.Duration(cfg.JwtAccessMinutes)*time.Minute,
		time.Duration(cfg.ResetTokenMinutes)*time.Minute,
	)
	service := auth.NewService(employeeStore, mailer, codec, cfg.OrgMailDomain, cfg.ResetLinkBase)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	routes.Register(router, routes.Deps{
		Service:        service,
		Codec:          codec,
		Employees:      employeeStore,
		Tasks:          employeeStore,
		AllowedOrigins: cfg.AllowedOriginsRaw,
	})

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
