package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 OK JSON response. Analysis reports carry their own
// error fields, so success at the HTTP level does not imply a fully
// successful analysis.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
