// Local preview server: serves the same dispatcher as the Lambda entry
// point over plain HTTP, so maintenance pages and routing rules can be
// exercised without a deployment.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"maintenance-gateway/internal/config"
	"maintenance-gateway/internal/gateway"
	"maintenance-gateway/internal/middleware"
	"maintenance-gateway/pkg/server"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize dependencies
	container, err := server.NewContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Close()

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Add middleware
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimiter(100, 200))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"timestamp":   time.Now().UTC(),
			"maintenance": cfg.Maintenance.Enabled,
		})
	})

	// Every other path goes through the dispatcher, exactly as behind the
	// load balancer.
	router.NoRoute(func(c *gin.Context) {
		req := requestFromHTTP(c)
		resp := container.Dispatcher.Handle(c.Request.Context(), req)

		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		c.String(resp.StatusCode, resp.Body)
	})

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Preview server started on port %s (maintenance=%v)", cfg.Port, cfg.Maintenance.Enabled)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// requestFromHTTP adapts a plain HTTP request into the gateway's request
// shape, standing in for the load balancer event.
func requestFromHTTP(c *gin.Context) *gateway.Request {
	headers := make(map[string]string, len(c.Request.Header))
	for k := range c.Request.Header {
		headers[strings.ToLower(k)] = c.Request.Header.Get(k)
	}
	if _, ok := headers["host"]; !ok && c.Request.Host != "" {
		headers["host"] = c.Request.Host
	}

	req := &gateway.Request{
		Method:       c.Request.Method,
		Path:         c.Request.URL.Path,
		Headers:      headers,
		SourceIP:     c.ClientIP(),
		RequestID:    c.GetString(middleware.RequestIDKey),
		FunctionName: "local-preview",
	}

	if len(c.Request.URL.Query()) > 0 {
		req.QueryParams = make(map[string]string)
		for k, vs := range c.Request.URL.Query() {
			if len(vs) > 0 {
				req.QueryParams[k] = vs[0]
			}
		}
	}

	return req
}
