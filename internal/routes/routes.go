package routes

import (
	"assetdesk/internal/container"
	"assetdesk/internal/middleware"
	"assetdesk/pkg/roles"
	"assetdesk/pkg/security"

	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(router *gin.Engine, c *container.Container) {
	c.LoginHandler.RegisterRoutes(router)
}

func RegisterProtectedRoutes(router *gin.Engine, c *container.Container) {
	api := router.Group("/api")
	api.Use(security.JWTMiddleware())

	hardware := api.Group("/hardware")
	{
		hardware.GET("/names", security.Authorize(roles.Employee), c.CatalogHandler.GetNames)
		hardware.GET("/models", security.Authorize(roles.Employee), c.CatalogHandler.GetModels)
		hardware.GET("/count", security.Authorize(roles.Employee), c.CatalogHandler.GetCount)
		hardware.GET("/units", security.Authorize(roles.Admin), c.CatalogHandler.GetUnits)
	}

	inventory := api.Group("/inventory")
	{
		inventory.GET("", security.Authorize(roles.Admin), c.CatalogHandler.GetInventory)
		inventory.POST("/add", security.Authorize(roles.Admin), c.CatalogHandler.AddInventory)
	}

	reqs := api.Group("/requests")
	{
		reqs.POST("", security.Authorize(roles.Employee), c.RequestHandler.SubmitRequest)
		reqs.GET("", security.Authorize(roles.Admin), c.RequestHandler.GetRequests)
		reqs.POST("/assign/:request_id", security.Authorize(roles.Admin), c.RequestHandler.AssignRequest)
	}

	api.GET("/allocations", security.Authorize(roles.Admin), c.LedgerHandler.GetAllocatedAssetIDs)
	api.GET("/allocations/employee/:emp_id", security.Authorize(roles.Employee), c.LedgerHandler.GetEmployeeAllocations)
	api.GET("/allocations/unit/:asset_id", security.Authorize(roles.Admin), c.LedgerHandler.GetUnitStatus)

	issues := api.Group("/issues")
	{
		issues.GET("/categories", security.Authorize(roles.Employee), c.IssueHandler.GetCategories)
		issues.GET("/by-category/:category", security.Authorize(roles.Employee), c.IssueHandler.GetIssuesByCategory)
	}

	api.POST("/issuerequest", security.Authorize(roles.Employee), c.IssueHandler.CreateIssue)
	api.POST("/aianalysis/:id", security.Authorize(roles.Admin), c.IssueHandler.Analyze)

	issueRequests := api.Group("/issuerequests")
	{
		issueRequests.GET("", security.Authorize(roles.Admin), c.IssueHandler.GetIssues)
		issueRequests.GET("/employee/:emp_id", security.Authorize(roles.Employee), c.IssueHandler.GetEmployeeIssues)
		issueRequests.GET("/:id", security.Authorize(roles.Employee), c.IssueHandler.GetIssue)
		issueRequests.PUT("/:id", security.Authorize(roles.Admin), c.IssueHandler.UpdateIssue)
		issueRequests.DELETE("/:id", security.Authorize(roles.Admin), c.IssueHandler.DeleteIssue)
	}

	api.GET("/auditlog/:resource_type/:id", security.Authorize(roles.Admin), c.AuditHandler.GetResourceLog)

	userRoutes := api.Group("/users")
	userRoutes.Use(security.Authorize(roles.Superadmin))
	{
		userRoutes.POST("", c.UserHandler.RegisterUser)
		userRoutes.GET("", c.UserHandler.GetUsers)
		userRoutes.GET("/:emp_id", c.UserHandler.GetUser)
		userRoutes.PUT("/:emp_id", c.UserHandler.UpdateUser)
		userRoutes.DELETE("/:emp_id", c.UserHandler.DeleteUser)
	}
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckHandler())
}
