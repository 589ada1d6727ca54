package http

import (
	"github.com/ardhitama/catering/internal/core/domain"
	"github.com/ardhitama/catering/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type BalanceHandler struct {
	Handler
	service port.Service
}

func NewBalanceHandler(service port.Service, logger *zap.Logger) (*BalanceHandler, error) {
	return &BalanceHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type balanceResponse struct {
	Balance string `json:"balance"`
}

func (bh *BalanceHandler) Balance(ctx *gin.Context) {
	username := getAuthPayload(ctx).Username

	balance, err := bh.service.Balance(ctx, username)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccess(ctx, balanceResponse{Balance: balance.String()})
}

type topUpRequest struct {
	Sum float64 `json:"sum"`
}

func (bh *BalanceHandler) TopUp(ctx *gin.Context) {
	req := topUpRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		bh.handleValidationError(ctx, err)
		return
	}

	username := getAuthPayload(ctx).Username

	d, err := decimal.NewFromFloat64(req.Sum)
	if err != nil {
		bh.handleValidationError(ctx, err)
		return
	}
	amount, err := domain.NewMoney(d)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	balance, err := bh.service.TopUp(ctx, username, amount)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}
	bh.handleSuccess(ctx, balanceResponse{Balance: balance.String()})
}
