package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

// NotConfirmed is the reply for a destructive action the caller did not
// confirm. A declined confirmation is a no-op, not an error.
func NotConfirmed(c *gin.Context) {
	c.JSON(200, gin.H{"confirmed": false})
}
