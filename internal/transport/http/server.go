package http

import (
	"github.com/gin-gonic/gin"

	"portfolio-twin/internal/bootstrap"
	"portfolio-twin/internal/transport/http/handler"
	"portfolio-twin/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(app.Logger.Named("http")),
		middleware.Recovery(app.Logger),
		middleware.CORS(),
	)

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/", healthHandler.Root)
	router.GET("/healthz", healthHandler.Check)

	chatHandler := handler.NewChatHandler(app.ChatService, app.Logger.Named("chat"))
	contactHandler := handler.NewContactHandler(app.ContactService, app.Logger.Named("contact"))

	api := router.Group("/api")
	api.POST("/chat/", chatHandler.Send)
	api.POST("/contact/", contactHandler.Submit)

	return router
}
