package server

import (
	"embed"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	v1 "github.com/inshiratech/halal-compliance-demo/internal/api/v1"
	"github.com/inshiratech/halal-compliance-demo/internal/config"
	"github.com/inshiratech/halal-compliance-demo/internal/service/compliance"
	"github.com/inshiratech/halal-compliance-demo/internal/store"
)

//go:embed dashboard.html
var staticFiles embed.FS

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	store  *store.Store
	v1     *v1.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化 SQLite Store
	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "halaldesk.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 首次启动写入演示数据
	if err := sqliteStore.SeedIfEmpty(time.Now().UTC()); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	// 缓存：配置了 Redis 地址时用 Redis，否则用内存缓存
	var cache compliance.Cache
	if addr := cfg.Cache.RedisAddr; addr != "" {
		cache = compliance.NewRedisCache(addr)
	} else {
		cache = compliance.NewMemoryCache()
	}

	complianceSvc := compliance.NewService(sqliteStore, cache)
	v1Handler := v1.NewHandler(sqliteStore, complianceSvc, cfg, dataDir)

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		v1:     v1Handler,
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// V1 API 路由
	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	if devMode {
		// 开发模式：代理到前端开发服务器
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		// 生产模式：使用 embed 的演示页面
		s.router.GET("/", func(c *gin.Context) {
			data, _ := staticFiles.ReadFile("dashboard.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})
		s.router.NoRoute(func(c *gin.Context) {
			data, _ := staticFiles.ReadFile("dashboard.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})
	}
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 释放资源
func (s *Server) Close() error {
	s.v1.Close()
	return s.store.Close()
}

// GetStore 获取存储（用于测试）
func (s *Server) GetStore() *store.Store {
	return s.store
}
