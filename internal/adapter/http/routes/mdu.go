package routes

import (
	"sistema_mdu/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathEnderecos = "/enderecos"
	PathGestao    = "/gestao"
	PathStats     = "/stats"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.RequireAuth(), h.Me)
	}
}

func addAddressRoutes(rg *gin.RouterGroup, h *handlers.AddressHandler) {
	enderecos := rg.Group(PathEnderecos)
	{
		enderecos.GET("", h.GetAll)
		enderecos.POST("", h.Add)
		enderecos.GET("/search", h.Search)
		enderecos.PATCH("/:id", h.Update)
		enderecos.DELETE("/:id", h.Delete)
	}
}

func addManagementRoutes(rg *gin.RouterGroup, h *handlers.ManagementHandler) {
	gestao := rg.Group(PathGestao)
	{
		gestao.GET("", h.Get)
		gestao.PUT("/:category", h.Save)
	}
}

func addStatsRoutes(rg *gin.RouterGroup, h *handlers.StatsHandler) {
	rg.GET(PathStats, h.GetStats)
}

func addTransferRoutes(rg *gin.RouterGroup, h *handlers.ImportExportHandler) {
	rg.POST("/import", h.Import)
	rg.GET("/export", h.Export)
}
