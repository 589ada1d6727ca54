package port

import "github.com/ardhitama/catering/internal/core/domain"

type TokenPayload struct {
	Username string
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(account *domain.Account) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
