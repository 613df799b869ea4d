package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/adelevett/MyTypeMeasure/docs"
	"github.com/adelevett/MyTypeMeasure/internal/analysis"
	"github.com/adelevett/MyTypeMeasure/internal/cache"
	apperrors "github.com/adelevett/MyTypeMeasure/internal/errors"
	"github.com/adelevett/MyTypeMeasure/internal/monitoring"
	"github.com/adelevett/MyTypeMeasure/internal/ratelimit"
	"github.com/adelevett/MyTypeMeasure/internal/types"
)

// Event logs for long sessions can run to tens of thousands of events.
const maxBodyBytes = int64(10 << 20)

func main() {
	// Structured logging setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Configuration from environment with defaults
	dataDir := getEnvOrDefault("DATA_DIR", "./data")
	port := getEnvOrDefault("PORT", "8080")

	analyzer := analysis.NewAnalyzer(dataDir)
	r := setupRouter(analyzer)

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		slog.Info("Starting server", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

// setupRouter wires the full middleware chain and route table.
func setupRouter(analyzer *analysis.Analyzer) *gin.Engine {
	r := gin.New()

	appMetrics := monitoring.NewMetrics()
	appLogger := monitoring.NewLogger()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Request-ID")
	r.Use(cors.New(corsConfig))

	r.Use(monitoring.RequestIDMiddleware())
	r.Use(monitoring.MonitoringMiddleware(appMetrics, appLogger))

	r.Use(apperrors.ErrorHandler())
	r.Use(apperrors.RecoveryHandler())

	limiter := ratelimit.NewRateLimiter(ratelimit.DefaultConfig())
	r.Use(ratelimit.Middleware(limiter, appMetrics))

	// Identical request bodies always produce identical reports, so
	// caching by body hash is safe.
	appCache := cache.NewCache(15 * time.Minute)
	r.Use(appCache.Middleware(appMetrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   "1.0.0",
		})
	})

	r.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"metrics":    appMetrics.GetStats(),
			"cache":      appCache.Stats(),
			"rate_limit": limiter.GetStats(),
			"timestamp":  time.Now().Format(time.RFC3339),
		})
	})

	r.POST("/analyze", func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		var req types.AnalyzeRequest
		if err := c.BindJSON(&req); err != nil {
			appErr := apperrors.NewValidationError("invalid request body: " + err.Error())
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		if req.Log == nil {
			appErr := apperrors.NewValidationError("log is required")
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		start := time.Now()
		report, err := analyzer.Analyze(req.Log, analysis.Options{
			Calibrate: req.Calibrate,
			Weights:   req.Weights,
			Profile:   req.Profile,
		})
		if err != nil {
			if errors.Is(err, analysis.ErrInsufficientData) {
				c.JSON(http.StatusOK, gin.H{
					"ready":  false,
					"reason": "insufficient_data",
					"detail": "at least two events are required",
				})
				return
			}
			appErr := apperrors.ToAppError(err)
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		appMetrics.IncrementAnalysis()
		appLogger.AnalysisLogger(
			req.Log.Len(),
			report.Score.LinearityScore,
			report.Score.SpontaneityScore,
			report.Calibrated,
			time.Since(start),
			c.GetBool("cache_hit"),
		)

		c.JSON(http.StatusOK, report)
	})

	r.POST("/metrics/extract", func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		var log types.KeystrokeLog
		if err := c.BindJSON(&log); err != nil {
			appErr := apperrors.NewValidationError("invalid request body: " + err.Error())
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		metrics, err := analyzer.ExtractMetrics(&log)
		if err != nil {
			if errors.Is(err, analysis.ErrInsufficientData) {
				c.JSON(http.StatusOK, gin.H{
					"ready":  false,
					"reason": "insufficient_data",
					"detail": "at least two events are required",
				})
				return
			}
			appErr := apperrors.ToAppError(err)
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		c.JSON(http.StatusOK, gin.H{"ready": true, "metrics": metrics})
	})

	r.POST("/calibrate", func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		var req types.AnalyzeRequest
		if err := c.BindJSON(&req); err != nil {
			appErr := apperrors.NewValidationError("invalid request body: " + err.Error())
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		if req.Log == nil {
			appErr := apperrors.NewValidationError("log is required")
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		baseline, err := analyzer.CalibrateBaseline(req.Log, req.Profile)
		if err != nil {
			if errors.Is(err, analysis.ErrCalibrationNotReady) {
				c.JSON(http.StatusOK, gin.H{
					"ready":  false,
					"reason": "calibration_not_ready",
					"detail": "not enough text yet to derive a baseline",
				})
				return
			}
			if errors.Is(err, analysis.ErrInsufficientData) {
				c.JSON(http.StatusOK, gin.H{
					"ready":  false,
					"reason": "insufficient_data",
					"detail": "at least two events are required",
				})
				return
			}
			appErr := apperrors.ToAppError(err)
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}

		appMetrics.IncrementCalibration()
		c.JSON(http.StatusOK, gin.H{"ready": true, "baseline": baseline})
	})

	r.GET("/benchmarks", func(c *gin.Context) {
		table, err := analyzer.Benchmarks(c.Query("profile"))
		if err != nil {
			appErr := apperrors.ToAppError(err)
			apperrors.LogError(c, appErr)
			c.JSON(appErr.HTTPStatus, appErr)
			return
		}
		c.JSON(http.StatusOK, table)
	})

	r.GET("/weights/defaults", func(c *gin.Context) {
		c.JSON(http.StatusOK, analyzer.DefaultWeightConfig())
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
