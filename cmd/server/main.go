package main

import (
	"flag"
	"fmt"
	"os"

	"balatro-spectator/internal/api"
	"balatro-spectator/internal/config"
	"balatro-spectator/internal/repo"
	"balatro-spectator/internal/service"
	pkgAuth "balatro-spectator/pkg/auth"
	"balatro-spectator/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	var (
		configPath string
		issueToken string
	)
	flag.StringVar(&configPath, "config", "config.yaml", "path to config file")
	flag.StringVar(&issueToken, "issue-token", "", "print a bearer token for the named client and exit")
	flag.Parse()

	// 1. Load Config
	config.LoadConfig(configPath)

	if issueToken != "" {
		if config.GlobalConfig.JWT.Secret == "" {
			fmt.Fprintln(os.Stderr, "jwt.secret is empty; the API is open and needs no token")
			os.Exit(1)
		}
		token, err := pkgAuth.GenerateToken(issueToken)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	// 2. Init Logger
	logger.InitLogger(config.GlobalConfig.Server.Mode)
	defer logger.Log.Sync()

	logger.Log.Info("Starting server...", zap.String("mode", config.GlobalConfig.Server.Mode))

	// 3. Init Redis (optional result cache)
	rdb := repo.InitRedis(config.GlobalConfig.Redis)

	// 3.5 Init Services
	services, err := service.NewContainer(config.GlobalConfig, rdb)
	if err != nil {
		logger.Log.Fatal("failed to build services", zap.Error(err))
	}

	// 4. Init Router
	if config.GlobalConfig.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Register Routes
	api.RegisterRoutes(r, services, config.GlobalConfig)

	// 5. Start Server
	addr := fmt.Sprintf(":%s", config.GlobalConfig.Server.Port)
	logger.Log.Info("Server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}
