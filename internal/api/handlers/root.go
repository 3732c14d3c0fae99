package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// collections lists the API roots advertised by the index
var collections = []string{"users", "teams", "activities", "leaderboard", "workouts"}

// RootHandler serves the API index
type RootHandler struct {
	basePath string
}

// NewRootHandler creates an index whose links live under basePath, e.g. "/api"
func NewRootHandler(basePath string) *RootHandler {
	return &RootHandler{basePath: basePath}
}

// Index returns absolute links to every collection root
// @Summary API index
// @Description Links to the users, teams, activities, leaderboard and workouts collections
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string "Collection links"
// @Router / [get]
func (h *RootHandler) Index(c *gin.Context) {
	base := requestScheme(c) + "://" + c.Request.Host + h.basePath + "/"
	links := make(map[string]string, len(collections))
	for _, name := range collections {
		links[name] = base + name + "/"
	}
	c.JSON(http.StatusOK, links)
}

func requestScheme(c *gin.Context) string {
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if c.Request.TLS != nil {
		return "https"
	}
	return "http"
}
