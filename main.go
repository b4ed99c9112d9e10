package main

import (
	"jobtrack/tracker-api/app"
	"jobtrack/tracker-api/config"

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

	r, err := app.NewRouter()
	if err != nil {
		panic(err)
	}

	zap.L().Info("Server starting", zap.String("port", viper.GetString("host.port")))

	err = r.Run(":" + viper.GetString("host.port"))
	if err != nil {
		panic(err)
	}
}
