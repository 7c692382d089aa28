package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/semafind/distcalc/distance"
)

type HttpApiConfig struct {
	// Gin debug mode
	Debug    bool   `yaml:"debug"`
	HttpHost string `yaml:"httpHost"`
	HttpPort int    `yaml:"httpPort"`
	// Prometheus metrics are served on a separate port when enabled
	EnableMetrics   bool `yaml:"enableMetrics"`
	MetricsHttpPort int  `yaml:"metricsHttpPort"`
}

// ---------------------------

func pongHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong from distcalc",
	})
}

// ---------------------------

func setupRouter(distFn distance.DistFunc, metrics *httpMetrics) *gin.Engine {
	router := gin.New()
	router.Use(RequestIdMiddleware(), ZerologLogger(metrics), gin.Recovery())
	v1 := router.Group("/v1")
	v1.GET("/ping", pongHandler)
	// ---------------------------
	handlers := NewDistCalcHandlers(distFn)
	v1.POST("/distance", handlers.Distance)
	v1.GET("/selftest", handlers.SelfTest)
	return router
}

// RunHTTPServer starts serving in the background and returns the server so the
// caller can shut it down.
func RunHTTPServer(cfg HttpApiConfig, distFn distance.DistFunc) *http.Server {
	// ---------------------------
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	var metrics *httpMetrics
	if cfg.EnableMetrics {
		metrics = setupAndListenMetrics(cfg)
	}
	// ---------------------------
	server := &http.Server{
		Addr:    cfg.HttpHost + ":" + strconv.Itoa(cfg.HttpPort),
		Handler: setupRouter(distFn, metrics),
	}
	go func() {
		log.Info().Str("httpAddr", server.Addr).Msg("HTTPAPI.Serve")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start http server")
		}
	}()
	return server
}
