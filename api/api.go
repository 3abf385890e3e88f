package api

import (
	"context"
	"errors"
	"fmt"
	api "folio/api-types"
	folio_errors "folio/internal"
	"folio/internal/resolver"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type server struct {
	resolver resolver.Resolver
	logger   zerolog.Logger
}

func NewRouter(r resolver.Resolver, logger zerolog.Logger) *gin.Engine {
	s := server{
		resolver: r,
		logger:   logger.With().Str("component", "api").Logger(),
	}

	router := gin.Default()

	router.Use(blockBots)
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to folio"})
	})

	router.POST("/statistics", func(c *gin.Context) {
		var req api.StatisticsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		resp, err := s.resolver.Statistics(c.Request.Context(), req)
		if err != nil {
			s.returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.POST("/correlation", func(c *gin.Context) {
		var req api.CorrelationMatrixRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		resp, err := s.resolver.CorrelationMatrix(c.Request.Context(), req)
		if err != nil {
			s.returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.POST("/optimizePortfolio", func(c *gin.Context) {
		var req api.OptimizePortfolioRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		resp, err := s.resolver.OptimizePortfolio(c.Request.Context(), req)
		if err != nil {
			s.returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.POST("/leastCorrelatedPortfolio", func(c *gin.Context) {
		var req api.LeastCorrelatedPortfolioRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		resp, err := s.resolver.LeastCorrelatedPortfolio(c.Request.Context(), req)
		if err != nil {
			s.returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	return router
}

func StartApi(ctx context.Context, port int, r resolver.Resolver, logger zerolog.Logger) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: NewRouter(r, logger),
	}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// statusCode maps errors caused by the caller to 4xx
func statusCode(err error) int {
	if errors.As(err, &resolver.ErrBadRequest{}) {
		return http.StatusBadRequest
	}
	if errors.As(err, &folio_errors.ErrSymbolNotFound{}) || errors.As(err, &folio_errors.ErrInsufficientData{}) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s server) returnErrorJson(err error, c *gin.Context) {
	s.returnErrorJsonCode(err, c, statusCode(err))
}

func (s server) returnErrorJsonCode(err error, c *gin.Context, code int) {
	s.logger.Error().Err(err).Str("path", c.FullPath()).Int("status", code).Msg("request failed")
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func blockBots(c *gin.Context) {
	clientIP := c.ClientIP()
	blockedIps := []string{"172.31.45.22"}
	for _, ip := range blockedIps {
		if ip == clientIP {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			c.Abort()
			return
		}
	}
	c.Next()
}
