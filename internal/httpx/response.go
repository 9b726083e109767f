package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/MikeMC777/pipedrill-shop/internal/store"
)

// Error codes carried in the "code" field of a failed response.
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidID          = "INVALID_ID"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeStorageError       = "STORAGE_ERROR"
)

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// ErrorResponse is the body of every failed call.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"   example:"body must be a JSON object"`
	Code    string `json:"code"    example:"INVALID_REQUEST"`
}

// OK writes {success:true} merged with data.
func OK(c *gin.Context, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

func Fail(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Error: msg, Code: code})
}

// StorageError answers a failed store call: 503 when the stored state could
// not be read, 500 for anything else.
func StorageError(c *gin.Context, err error) {
	_ = c.Error(err)
	if store.Unavailable(err) {
		Fail(c, http.StatusServiceUnavailable, CodeStorageUnavailable, err.Error())
		return
	}
	zap.L().Error("store call failed", zap.String("path", c.FullPath()), zap.Error(err))
	Fail(c, http.StatusInternalServerError, CodeStorageError, err.Error())
}

// BindObject decodes the request body as a JSON object. Arrays, scalars,
// null and an empty body are rejected. Numbers keep their literal form.
func BindObject(c *gin.Context) (store.Record, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, errors.Wrap(store.ErrNotObject, err.Error())
	}
	return store.ParseObject(raw)
}
