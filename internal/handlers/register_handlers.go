package handlers

import (
	"github.com/dashbill/invoice_dashboard_app/cmd/docs"
	portssvc "github.com/dashbill/invoice_dashboard_app/internal/core/ports/services"
	"github.com/dashbill/invoice_dashboard_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Dashboard routes: the invoice form endpoints and their read views
	setupDashboardRoutes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupDashboardRoutes configures the /dashboard group and delegates to
// specific entity route registrations
func setupDashboardRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	dashboard := r.Group("/dashboard")

	RegisterInvoiceRoutes(dashboard, services.Invoice, NewRedirectNavigator())
	RegisterCustomerRoutes(dashboard, services.Customer)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/dashboard"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
