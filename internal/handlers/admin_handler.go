package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prem-himanshu/food-waste-management/internal/responses"
	"github.com/Prem-himanshu/food-waste-management/internal/services"
)

type AdminHandler struct {
	readiness *services.ReadinessService
}

func NewAdminHandler(readiness *services.ReadinessService) *AdminHandler {
	return &AdminHandler{
		readiness: readiness,
	}
}

// Reload re-runs the dataset loader. Tables written before a failing file
// stay in place; the error names the file that failed.
func (h *AdminHandler) Reload(c *gin.Context) {
	loaded, err := h.readiness.Reload()
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Reload failed")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"loaded": loaded}, "Source files loaded successfully")
}
