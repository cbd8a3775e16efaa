package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the only error shape clients see.
type ErrorBody struct {
	Detail string `json:"detail"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Error(c *gin.Context, httpStatus int, detail string) {
	c.AbortWithStatusJSON(httpStatus, ErrorBody{Detail: detail})
}

func Unprocessable(c *gin.Context, detail string) {
	Error(c, http.StatusUnprocessableEntity, detail)
}

func Internal(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, err.Error())
}
