package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stephen-1-2/Anonymous-Wall/pkg/logger"
)

// VerifyAdmin handles POST /api/admin/verify. It only reports whether the
// supplied secret matches; the gate middleware re-checks the secret on
// every destructive request, so nothing is granted here.
func (h *Handler) VerifyAdmin(c *gin.Context) {
	var input struct {
		Pwd string `json:"pwd"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "Invalid request"})
		return
	}

	ok := h.Gate.Verify(input.Pwd)
	if !ok {
		logger.Warn().Str("ip", c.ClientIP()).Msg("failed admin verification")
	}

	msg := "Wrong password"
	if ok {
		msg = "Verified"
	}
	c.JSON(http.StatusOK, gin.H{"success": ok, "msg": msg})
}
