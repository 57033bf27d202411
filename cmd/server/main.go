package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"gridgame/internal/api"
	"gridgame/internal/config"
	"gridgame/internal/engine"
	"gridgame/internal/query"
	"gridgame/internal/repo"
	"gridgame/internal/store"
	"gridgame/pkg/cursor"
	"gridgame/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "path to config file")
	flag.Parse()

	rand.Seed(time.Now().UnixNano())

	// 1. Load Config
	config.LoadConfig(configPath)

	// 2. Init Logger
	logger.InitLogger(config.GlobalConfig.Server.Mode)
	defer logger.Log.Sync()

	logger.Log.Info("starting server", zap.String("mode", config.GlobalConfig.Server.Mode))

	// 3. Init DB & Redis
	repo.InitDB()
	repo.InitRedis()

	// 4. Wire the Session Store / Engine / Query Surface
	sessionStore := store.New(repo.DB, repo.RDB)
	eng := engine.New(sessionStore)
	cursorCodec := cursor.NewCodec(config.GlobalConfig.Cursor.Secret)
	q := query.New(sessionStore, cursorCodec)

	// 5. Init Router
	if config.GlobalConfig.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	api.RegisterRoutes(r, eng, q, config.GlobalConfig.CORS, config.GlobalConfig.Game)

	// 6. Start Server
	addr := fmt.Sprintf(":%s", config.GlobalConfig.Server.Port)
	logger.Log.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Log.Fatal("server failed to start", zap.Error(err))
	}
}
