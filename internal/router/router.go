package router

import (
	"github.com/gin-gonic/gin"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "voxbill/docs" // generated swagger spec

	"voxbill/internal/config"
	"voxbill/internal/handler"
	"voxbill/internal/middleware"
	"voxbill/internal/port"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	verifier port.SessionVerifier,
	healthH *handler.HealthHandler,
	authH *handler.AuthHandler,
	audioH *handler.AudioHandler,
	invoiceH *handler.InvoiceHandler,
	contactH *handler.ContactHandler,
	redirectH *handler.RedirectHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(&cfg.CORS))

	// Health check
	r.GET("/health", healthH.Health)

	// Frontend page redirects
	r.GET("/", redirectH.To("/", "Backend running. Set VOXBILL_FRONTEND_URL to redirect to the frontend."))
	r.GET("/invoice_tool", redirectH.To("/tool.html", "Use the frontend to open the invoice tool."))
	r.GET("/pricing", redirectH.To("/pricing.html", "Pricing route. The frontend serves this."))
	r.GET("/contact", redirectH.To("/contact.html", "Contact route. The frontend serves this."))

	// Contact relay and PDF download keep their historical top-level paths.
	r.POST("/submit-contact", contactH.Submit)
	r.GET("/download_pdf/:filename", invoiceH.Download)

	v1 := r.Group("/api/v1")
	v1.POST("/upload_audio", audioH.Upload)
	v1.POST("/generate_invoice_text", invoiceH.GenerateFromText)
	v1.POST("/save_invoice", invoiceH.Save)

	// Protected routes - require a verified session token
	protected := v1.Group("")
	protected.Use(middleware.Auth(verifier))
	protected.GET("/protected", authH.Protected)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler))

	return r
}
