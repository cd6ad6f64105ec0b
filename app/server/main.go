package main

import (
	"contact-manager/app/server/apidocs"
	"contact-manager/app/server/handlers"
	"contact-manager/app/server/inits"
	"contact-manager/app/server/jwt"
	"contact-manager/app/server/password"
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer l.Sync()

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化密码哈希
	hasher, err := password.New(cfg.Security.PasswordHash)
	if err != nil {
		l.Fatal("error initializing password hasher", zap.Error(err))
	}

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化启动数据
	if created, err := inits.InitData(db, hasher, cfg); err != nil {
		l.Fatal("error initializing admin user", zap.Error(err))
	} else if created {
		l.Info("initial admin user created", zap.String("email", cfg.InitAdmin.Email))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	} else if rdb == nil {
		l.Info("REDIS_CONN not set, user info cache disabled")
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, rdb, j, hasher, cfg.System.IsProd)

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogMethod:  true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// 绑定 echo 服务
	handlerApp.RegisterHandlers(e)

	// 添加 API 文档
	if !cfg.System.IsProd {
		if swgJson, err := apidocs.Spec(context.Background()); err != nil {
			l.Error("error initializing api spec", zap.Error(err))
		} else if doc, err := apidocs.Doc("/api", swgJson); err != nil {
			l.Error("error initializing api docs", zap.Error(err))
		} else {
			e.Pre(doc)
		}
	}

	// 启动 echo 服务
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.System.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	l.Info("shutting down the server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		l.Error("error shutting down the server", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
