package http

import (
	"github.com/ardhitama/catering/internal/core/domain"
	"github.com/ardhitama/catering/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	Handler
	service port.Service
}

func NewCatalogHandler(service port.Service, logger *zap.Logger) (*CatalogHandler, error) {
	return &CatalogHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type menuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

func newMenuItemResponse(item domain.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.String(),
	}
}

func (ch *CatalogHandler) ListMenu(ctx *gin.Context) {
	items, err := ch.service.Menu(ctx)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, newMenuItemResponse(item))
	}

	ch.handleSuccess(ctx, result)
}

func (ch *CatalogHandler) GetMenuItem(ctx *gin.Context) {
	item, err := ch.service.MenuItem(ctx, ctx.Param("id"))
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, newMenuItemResponse(item))
}
