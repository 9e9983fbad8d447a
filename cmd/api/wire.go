//go:build wireinject
// +build wireinject

// Wire依赖注入配置
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	appcatalog "github.com/xiebiao/lanchonete/internal/application/catalog"
	appreport "github.com/xiebiao/lanchonete/internal/application/report"
	appsale "github.com/xiebiao/lanchonete/internal/application/sale"
	appuser "github.com/xiebiao/lanchonete/internal/application/user"
	"github.com/xiebiao/lanchonete/internal/domain/user"
	"github.com/xiebiao/lanchonete/internal/infrastructure/config"
	"github.com/xiebiao/lanchonete/internal/infrastructure/messaging"
	"github.com/xiebiao/lanchonete/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/lanchonete/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/lanchonete/internal/interface/http/handler"
	"github.com/xiebiao/lanchonete/internal/interface/http/middleware"
	"github.com/xiebiao/lanchonete/internal/interface/http/router"
)

// infrastructureSet 数据库、Redis、消息发布
var infrastructureSet = wire.NewSet(
	provideDB,
	provideRedis,
	provideReportCache,
	messaging.NewEventPublisher,
)

// repositorySet 仓储
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewCatalogRepository,
	mysql.NewMovementRepository,
	mysql.NewSaleRepository,
	mysql.NewReportRepository,
	mysql.NewTxManager,
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	provideAdminEmails,
	user.NewService,
)

// applicationSet 用例
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
	appuser.NewAssignRoleUseCase,

	appcatalog.NewListMenuUseCase,
	appcatalog.NewCreateProductUseCase,
	appcatalog.NewDeleteProductUseCase,
	appcatalog.NewCreateStockItemUseCase,
	appcatalog.NewRestockUseCase,
	appcatalog.NewListMovementsUseCase,

	appsale.NewEffects,
	appsale.NewCreateSaleUseCase,
	appsale.NewGetSaleUseCase,
	appsale.NewListActiveUseCase,
	appsale.NewListMineUseCase,
	appsale.NewConfirmPaymentUseCase,
	appsale.NewUpdateStatusUseCase,
	appsale.NewDeleteSaleUseCase,

	appreport.NewOptions,
	appreport.NewSalesReportUseCase,
	appreport.NewProfitabilityUseCase,
)

// middlewareSet JWT与认证
var middlewareSet = wire.NewSet(
	provideJWTManager,
	redis.NewSessionStore,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器与路由
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewSaleHandler,
	handler.NewCatalogHandler,
	handler.NewReportHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// InitializeApp 组装整个应用，cleanup按创建的逆序释放资源
func InitializeApp(cfg *config.Config, logger *zap.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
