//	@title			Lost and Found Backend
//	@version		1.0.0
//	@description	Community lost and found platform backend

//	@host		localhost:8000
//	@BasePath	/api

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"

	"lostfound_backend/apis"
	"lostfound_backend/config"
	_ "lostfound_backend/docs"
	"lostfound_backend/middlewares"
	"lostfound_backend/models"
	"lostfound_backend/utils"
)

func main() {
	config.InitConfig()
	models.InitDB()

	app := fiber.New(fiber.Config{
		AppName:      config.AppName,
		ErrorHandler: utils.MyErrorHandler,
	})
	middlewares.RegisterMiddlewares(app)
	apis.RegisterRoutes(app)

	startTasks()

	go func() {
		err := app.Listen("0.0.0.0:8000")
		if err != nil {
			log.Println(err)
		}
	}()

	interrupt := make(chan os.Signal, 1)

	// wait for CTRL-C interrupt
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-interrupt

	// close app
	err := app.Shutdown()
	if err != nil {
		log.Println(err)
	}

	_ = utils.Logger.Sync()
}

func startTasks() {
	c := cron.New()
	// run every day 00:00 UTC
	_, err := c.AddFunc("0 0 * * *", models.ExpireInviteCodesTask)
	if err != nil {
		panic(err)
	}
	_, err = c.AddFunc("30 0 * * *", models.RefreshStatisticsTask)
	if err != nil {
		panic(err)
	}
	go c.Start()
}
