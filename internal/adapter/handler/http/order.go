package http

import (
	"net/http"
	"time"

	"github.com/ardhitama/catering/internal/core/domain"
	"github.com/ardhitama/catering/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type orderLineRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type orderRequest struct {
	Items []orderLineRequest `json:"items"`
}

type orderLineResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

type orderResponse struct {
	ID        string              `json:"id"`
	CreatedAt time.Time           `json:"created_at"`
	Items     []orderLineResponse `json:"items"`
	Total     string              `json:"total"`
}

func newOrderResponse(order *domain.Order) (orderResponse, error) {
	lines := order.Lines()
	items := make([]orderLineResponse, 0, len(lines))
	for _, line := range lines {
		subtotal, err := line.Subtotal()
		if err != nil {
			return orderResponse{}, err
		}
		items = append(items, orderLineResponse{
			ID:       line.Item().ID,
			Name:     line.Item().Name,
			Price:    line.Item().Price.String(),
			Quantity: line.Quantity(),
			Subtotal: subtotal.String(),
		})
	}

	total, err := order.Total()
	if err != nil {
		return orderResponse{}, err
	}

	return orderResponse{
		ID:        order.ID(),
		CreatedAt: order.CreatedAt(),
		Items:     items,
		Total:     total.String(),
	}, nil
}

// CreateOrder places an order paid from the account balance. Empty orders are
// refused here; the domain itself allows them.
func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := orderRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	if len(req.Items) == 0 {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	username := getAuthPayload(ctx).Username

	lines := make([]port.OrderRequestLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, port.OrderRequestLine{
			MenuItemID: item.ID,
			Quantity:   item.Quantity,
		})
	}

	order, err := oh.service.PlaceOrder(ctx, username, lines)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	resp, err := newOrderResponse(order)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, resp, http.StatusCreated)
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	username := getAuthPayload(ctx).Username

	orders, err := oh.service.Orders(ctx, username)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		resp, err := newOrderResponse(order)
		if err != nil {
			oh.handleError(ctx, err)
			return
		}
		result = append(result, resp)
	}

	oh.handleSuccess(ctx, result)
}
