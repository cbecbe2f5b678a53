package main

import (
	"transcontrol/internal/inspectores/handler"
	"transcontrol/internal/inspectores/repository"
	"transcontrol/internal/inspectores/service"
	"transcontrol/internal/inspectores/validator"
	"transcontrol/pkg/app"
	"transcontrol/pkg/config"
)

func main() {
	cfg := config.Load("inspectores")
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	usuarioRepo := repository.NewMongoUsuarioRepository(cfg)
	usuarioValidator := validator.NewUsuarioValidator()
	usuarioService := service.NewUsuarioService(usuarioRepo, usuarioValidator, cfg)
	usuarioHandler := handler.NewUsuarioHandler(usuarioService, cfg.Log)

	application := app.New(cfg)
	application.Setup(usuarioHandler)
	application.Run()
}
