// Package httpresp padroniza as respostas de sucesso da API.
package httpresp

import "github.com/gin-gonic/gin"

// ListResponse embrulha toda listagem com o total junto; o painel
// conta com esse formato para paginação e contadores.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
