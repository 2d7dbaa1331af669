// Package web provides API routes for the web server.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/database"
	"github.com/PancyStudios/PancyModGo/pkg/discord"
	"github.com/PancyStudios/PancyModGo/pkg/models"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/guilds/:guildId/infractions", guildInfractionsHandler)
	}
}

// statusHandler returns the bot and database status
func statusHandler(c *gin.Context) {
	client := discord.Get()

	dbStatus, dbOnline := "🔴 | Desconectado", false
	if db := database.Get(); db != nil {
		dbStatus, dbOnline = db.GetStatus()
	}

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
		},
		"bot": gin.H{
			"isOnline": botOnline,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "PancyMod Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "El bot no está disponible en este momento.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// guildInfractionsHandler lists a guild's infractions, optionally
// filtered by ?type=warning (repeatable).
func guildInfractionsHandler(c *gin.Context) {
	store := database.GlobalInfractionStore
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Database Offline",
			"message": "La base de datos no está disponible en este momento.",
		})
		return
	}

	var types []models.InfractionType
	for _, raw := range c.QueryArray("type") {
		parsed, err := models.ParseInfractionType(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Bad Request",
				"message": "Tipo de infracción desconocido: " + raw,
			})
			return
		}
		types = append(types, parsed)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	infractions, err := store.FindByGuild(ctx, c.Param("guildId"), types)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "No se pudieron consultar las infracciones.",
		})
		return
	}

	if infractions == nil {
		infractions = []*models.Infraction{}
	}

	c.JSON(http.StatusOK, gin.H{
		"guildId":     c.Param("guildId"),
		"count":       len(infractions),
		"infractions": infractions,
	})
}
