package router

import (
	"net/http"
	"time"

	"budgetbook/api"
	"budgetbook/config"
	_ "budgetbook/docs"
	"budgetbook/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// SetupRouter wires all routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())

	authHandler := api.NewAuthHandler(cfg)
	categoryHandler := api.NewCategoryHandler()
	budgetHandler := api.NewBudgetHandler(cfg)
	transactionHandler := api.NewTransactionHandler()
	exportHandler := api.NewExportHandler()

	apiGroup := r.Group("/api")
	{
		// login and registration, throttled per IP
		auth := apiGroup.Group("/auth")
		auth.Use(middleware.LoginRateLimit(10, time.Minute))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/session", authHandler.SessionLogin)
		}

		// raw OpenAPI document
		apiGroup.GET("/swagger", func(c *gin.Context) {
			doc, err := swag.ReadDoc()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"code": 500, "message": "swagger document unavailable"})
				return
			}
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
		})

		// everything below requires a token (Bearer header or auth-token cookie)
		authorized := apiGroup.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.POST("/auth/logout", authHandler.Logout)
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			categories := authorized.Group("/categories")
			{
				categories.GET("", categoryHandler.List)
				categories.POST("", categoryHandler.Create)
				categories.GET("/:id", categoryHandler.Get)
				categories.PATCH("/:id", categoryHandler.Update)
				categories.DELETE("/:id", categoryHandler.Delete)
			}
			// legacy rename route of the old budget page
			authorized.PATCH("/budget/category", categoryHandler.Rename)

			budgets := authorized.Group("/budgets")
			{
				budgets.GET("", budgetHandler.List)
				budgets.GET("/current", budgetHandler.GetCurrent)
				budgets.GET("/:id/summary", budgetHandler.Summary)
				budgets.POST("/:id/summary/email", budgetHandler.SendSummaryEmail)
			}

			transactions := authorized.Group("/transactions")
			{
				transactions.POST("", transactionHandler.Create)
				transactions.GET("", transactionHandler.List)
				transactions.GET("/:id", transactionHandler.Get)
				transactions.PUT("/:id", transactionHandler.Update)
				transactions.DELETE("/:id", transactionHandler.Delete)
			}

			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/json", exportHandler.ExportJSON)
				export.GET("/excel", exportHandler.ExportExcel)
			}
		}
	}

	// swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware handles cross-origin requests
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
