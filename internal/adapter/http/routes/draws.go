package routes

import (
	"resultados/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDraws = "/draws"
)

func addDrawRoutes(rg *gin.RouterGroup, drawHandler *handlers.DrawHandler) {
	draws := rg.Group(PathDraws)
	{
		draws.GET("/bounds", drawHandler.GetBounds)
		draws.GET("/day", drawHandler.GetDay)
		draws.GET("/range", drawHandler.GetRange)
		draws.GET("/staleness", drawHandler.GetStaleness)
	}
}
