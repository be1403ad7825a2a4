package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/openpolls/backend/internal/client"
	"github.com/openpolls/backend/internal/controller"
	"github.com/openpolls/backend/internal/dto"
	"github.com/openpolls/backend/internal/repository"
	"github.com/openpolls/backend/internal/service"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := dto.LoadConfig()

	db, err := gorm.Open(postgres.Open(config.PostgresDSN()), &gorm.Config{})
	if err != nil {
		logrus.Panicf("Error connecting to database: %v", err)
	}
	logrus.Info("Database connected successfully")

	clients := client.NewClients(config)
	defer clients.Notifier().Close()

	repositories := repository.NewRepositories(db)
	services := service.NewServices(repositories, config, clients)
	controllers := controller.NewControllers(services)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	controllers.Route(e)

	logrus.Infof("Starting server on %s", config.ListenAddr)
	if err := e.Start(config.ListenAddr); err != nil {
		logrus.Panic(err)
	}
}
