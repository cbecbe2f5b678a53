package main

import (
	"transcontrol/internal/dashboard/handler"
	"transcontrol/internal/dashboard/repository"
	"transcontrol/internal/dashboard/service"
	"transcontrol/pkg/app"
	"transcontrol/pkg/config"
)

func main() {
	cfg := config.Load("dashboard")
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	registroRepo := repository.NewMongoRegistroRepository(cfg)
	dashboardService := service.NewDashboardService(registroRepo, cfg)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, cfg.Log)

	application := app.New(cfg)
	application.Setup(dashboardHandler)
	application.Run()
}
