package handler

import (
	"net/http"

	"github.com/contractflow/backend/storage"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	store storage.Storage
}

func NewDashboardHandler(store storage.Storage) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Stats returns the dashboard snapshot, computed fresh on every call
func (h *DashboardHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetDashboardStats())
}
