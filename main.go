package main

import (
	"fmt"

	"parasport/games-api/api"
	"parasport/games-api/config"
	"parasport/games-api/db"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	d, err := db.New(viper.GetString("database.path"))
	if err != nil {
		panic(err)
	}

	if config.ImportRequested() {
		err = db.Import(d, "data/noc_regions.csv", "data/paralympic_events.csv")
		if err != nil {
			panic(err)
		}

		fmt.Println("Dataset imported")
		return
	}

	a := api.NewRouter(d, config.AuthFromViper())

	zap.L().Info("Server starting")

	err = a.Router.Run(fmt.Sprintf(":%d", viper.GetInt("host.port")))
	if err != nil {
		panic(err)
	}
}
