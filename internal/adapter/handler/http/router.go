package http

import (
	"github.com/ardhitama/catering/internal/adapter/config"
	"github.com/ardhitama/catering/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	userHandler *UserHandler,
	catalogHandler *CatalogHandler,
	balanceHandler *BalanceHandler,
	orderHandler *OrderHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		menu := api.Group("/menu")
		{
			menu.GET("", catalogHandler.ListMenu)
			menu.GET("/:id", catalogHandler.GetMenuItem)
		}

		user := api.Group("/user")
		{
			user.POST("/register", userHandler.Register)
			user.POST("/login", userHandler.Login)

			authorized := user.Group("")
			{
				authorized.Use(authCheck(tokenService))
				authorized.GET("/balance", balanceHandler.Balance)
				authorized.POST("/balance/topup", balanceHandler.TopUp)
				authorized.POST("/orders", orderHandler.CreateOrder)
				authorized.GET("/orders", orderHandler.ListOrders)
			}
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
