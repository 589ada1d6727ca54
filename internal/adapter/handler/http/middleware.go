package http

import (
	"strings"

	"github.com/ardhitama/catering/internal/core/domain"
	"github.com/ardhitama/catering/internal/core/port"
	"github.com/gin-gonic/gin"
)

const authHeaderKey = "Authorization"
const bearerType = "Bearer"
const userPayloadKey = "user_payload"

// authCheck verifies the bearer token and stores its payload on the context
// for the handlers behind it.
func authCheck(tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader(authHeaderKey)
		if header == "" {
			handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		authType, token, found := strings.Cut(header, " ")
		if !found || token == "" {
			handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if authType != bearerType {
			handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}

		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(userPayloadKey, payload)

		ctx.Next()
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(userPayloadKey).(*port.TokenPayload)
}
