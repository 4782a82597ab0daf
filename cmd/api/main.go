package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gestiondeo/internal/config"
	"gestiondeo/internal/middleware"
	"gestiondeo/internal/modules/auth"
	"gestiondeo/internal/modules/dashboard"
	"gestiondeo/internal/modules/events"
	"gestiondeo/internal/modules/order"
	"gestiondeo/internal/modules/person"
	"gestiondeo/internal/modules/project"
	"gestiondeo/internal/modules/report"
	"gestiondeo/internal/modules/role"
	jwtsvc "gestiondeo/internal/pkg/jwt"
	"gestiondeo/internal/repository"
	"gestiondeo/internal/sheets"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	oauthConf := sheets.OAuthConfig(cfg)
	tokens := sheets.NewTokenStore(oauthConf, cfg.GoogleRefreshToken)
	svc, err := sheets.NewService(ctx, tokens)
	if err != nil {
		log.Fatal(err)
	}

	store := repository.NewStore(svc, cfg.SpreadsheetID)

	hub := events.NewHub()
	defer hub.Close()
	store.OnRefresh(func() { hub.Broadcast(events.EventDatosActualizados) })

	// La primera carga puede fallar si todavía no hay token de Google; el
	// portal arranca igual y el operador conecta la hoja desde /auth/google.
	loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if err := store.LoadAll(loadCtx); err != nil {
		if errors.Is(err, repository.ErrUnauthorized) || errors.Is(err, sheets.ErrNoToken) {
			log.Printf("[api] hoja sin autorizar todavía: %v", err)
		} else {
			log.Fatal(err)
		}
	}
	cancel()

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(cfg.AdminUsername, cfg.AdminPasswordHash, j, oauthConf, tokens)
	authService.OnConnected(func() {
		reloadCtx, done := context.WithTimeout(context.Background(), 30*time.Second)
		defer done()
		if err := store.LoadAll(reloadCtx); err != nil {
			log.Printf("[api] recarga tras conectar la hoja falló: %v", err)
		}
	})
	authHandler := auth.NewHandler(authService)

	projectHandler := project.NewHandler(project.NewService(store))
	personHandler := person.NewHandler(person.NewService(store))
	roleHandler := role.NewHandler(role.NewService(store))

	orderService := order.NewService(store)
	orderHandler := order.NewHandler(orderService)

	dashboardHandler := dashboard.NewHandler(dashboard.NewService(orderService, store))
	reportHandler := report.NewHandler(report.NewService())
	eventsHandler := events.NewHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		eventsHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			projectHandler.RegisterRoutes(protected)
			personHandler.RegisterRoutes(protected)
			roleHandler.RegisterRoutes(protected)
			orderHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
			reportHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
