package main

import (
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/xiebiao/lanchonete/internal/domain/report"
	"github.com/xiebiao/lanchonete/internal/domain/user"
	"github.com/xiebiao/lanchonete/internal/infrastructure/config"
	"github.com/xiebiao/lanchonete/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/lanchonete/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/lanchonete/pkg/jwt"
)

// App 组装完成的应用
type App struct {
	Config *config.Config
	Engine *gin.Engine
}

// provideDB 数据库连接，cleanup关闭连接池
func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := mysql.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				zap.L().Warn("关闭数据库连接失败", zap.Error(err))
			}
		}
	}
	return db, cleanup, nil
}

// provideRedis Redis连接，cleanup关闭客户端
func provideRedis(cfg *config.Config) (*goredis.Client, func(), error) {
	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			zap.L().Warn("关闭Redis连接失败", zap.Error(err))
		}
	}
	return client, cleanup, nil
}

func provideReportCache(client *goredis.Client, cfg *config.Config) report.Cache {
	return redis.NewReportCache(client, cfg.Report.CacheTTL)
}

// provideJWTManager jwt.NewManager只需要JWT相关配置，Wire无法自动从Config中提取
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

func provideAdminEmails(cfg *config.Config) user.AdminEmails {
	return user.AdminEmails(cfg.Auth.AdminEmails)
}
