package service

import (
	"context"
	"errors"
	"time"

	"github.com/ardhitama/catering/internal/core/domain"
	"github.com/ardhitama/catering/internal/core/port"
	"github.com/ardhitama/catering/internal/core/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	accounts     port.AccountRepository
	catalog      port.CatalogRepository
	tokenService port.TokenService
	logger       *zap.Logger
}

func NewService(accounts port.AccountRepository, catalog port.CatalogRepository,
	tokenService port.TokenService, logger *zap.Logger) (*Service, error) {
	return &Service{
		accounts:     accounts,
		catalog:      catalog,
		tokenService: tokenService,
		logger:       logger,
	}, nil
}

func (s *Service) Register(ctx context.Context, username string, password string) (*domain.Account, error) {
	exAccount, err := s.accounts.GetAccountByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get account", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if exAccount != nil {
		return nil, domain.ErrConflictingData
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.logger.Error("Hash password", zap.Error(err))
		return nil, domain.ErrInternal
	}

	newAccount, err := s.accounts.CreateAccount(ctx, domain.NewAccount(username, hash))
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Create account", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newAccount, nil
}

func (s *Service) Login(ctx context.Context, username string, password string) (string, error) {
	account, err := s.accounts.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, account.PasswordHash())
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(account)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *Service) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := s.catalog.ListMenuItems(ctx)
	if err != nil {
		s.logger.Error("List menu", zap.Error(err))
		return nil, err
	}
	return items, nil
}

func (s *Service) MenuItem(ctx context.Context, id string) (domain.MenuItem, error) {
	return s.catalog.GetMenuItem(ctx, id)
}

func (s *Service) TopUp(ctx context.Context, username string, amount domain.Money) (domain.Money, error) {
	account, err := s.accounts.UpdateAccount(ctx, username,
		func(a *domain.Account) error {
			_, err := a.TopUp(amount)
			return err
		})
	if err != nil {
		return domain.Money{}, err
	}

	return account.Balance(), nil
}

func (s *Service) Balance(ctx context.Context, username string) (domain.Money, error) {
	account, err := s.accounts.GetAccountByUsername(ctx, username)
	if err != nil {
		return domain.Money{}, err
	}
	return account.Balance(), nil
}

// PlaceOrder builds an order from the requested lines, charges its total
// against the account balance and, only if the deduction was accepted,
// records the order in the account history. The deduct-and-record step runs
// inside the repository's account update scope, so concurrent orders against
// one account are serialized and can never overdraw it together.
func (s *Service) PlaceOrder(ctx context.Context, username string,
	lines []port.OrderRequestLine) (*domain.Order, error) {
	order := domain.NewOrder(uuid.NewString(), username, time.Now())
	for _, line := range lines {
		item, err := s.catalog.GetMenuItem(ctx, line.MenuItemID)
		if err != nil {
			return nil, err
		}
		err = order.AddLine(item, line.Quantity)
		if err != nil {
			return nil, err
		}
	}

	total, err := order.Total()
	if err != nil {
		return nil, err
	}

	_, err = s.accounts.UpdateAccount(ctx, username,
		func(a *domain.Account) error {
			accepted, err := a.DeductOrReject(total)
			if err != nil {
				return err
			}
			if !accepted {
				return domain.ErrInsufficientBalance
			}
			a.RecordPlacedOrder(order)
			return nil
		})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.String("order", order.ID()),
		zap.String("account", username),
		zap.String("total", total.String()))

	return order, nil
}

func (s *Service) Orders(ctx context.Context, username string) ([]*domain.Order, error) {
	account, err := s.accounts.GetAccountByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return account.History(), nil
}
