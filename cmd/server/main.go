package main

import (
	"embed"
	"flag"
	"io/fs"
	"net/http"
	"os"

	"fit-trainer/internal/config"
	"fit-trainer/internal/handler"
	"fit-trainer/internal/logger"
	"fit-trainer/internal/model"
	"fit-trainer/internal/oracle"
	"fit-trainer/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed public/*
var staticFS embed.FS

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	if err := cfg.Validate(); err != nil {
		logger.Error("bad config", "err", err)
		os.Exit(1)
	}

	// History is optional: without a database the planner runs
	// memory-only, same as generation runs without credentials until
	// the first plan request.
	var historySvc *service.HistoryService
	if db, err := cfg.OpenGormDB(); err != nil {
		logger.Warn("db connect failed, running without plan history", "err", err)
	} else {
		if err := db.AutoMigrate(&model.PlanSnapshot{}); err != nil {
			logger.Warn("migrate failed, running without plan history", "err", err)
		} else {
			historySvc = service.NewHistoryService(db)
		}
	}

	llm := oracle.NewAzureClient(cfg.Azure.Endpoint, cfg.Azure.Deployment, cfg.Azure.APIVersion, cfg.Azure.APIKey)
	if !llm.Configured() {
		logger.Warn("azure openai not configured, plan generation will fail until env vars are set")
	}

	planSvc := service.NewPlanService(llm, historySvc, cfg.Plan.Days)
	planH := handler.NewPlanHandler(planSvc, historySvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	api.GET("/user", planH.GetUser)
	api.POST("/plan/generate", planH.GeneratePlan)
	api.POST("/fitTrAIner", planH.Override)
	api.GET("/events", planH.GetEvents)
	api.GET("/plan/history", planH.GetHistory)

	publicFS, _ := fs.Sub(staticFS, "public")
	r.NoRoute(gin.WrapH(http.FileServer(http.FS(publicFS))))

	logger.Info("server starting", "addr", cfg.Addr(), "planDays", cfg.Plan.Days)
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("server failed", "err", err)
	}
}
