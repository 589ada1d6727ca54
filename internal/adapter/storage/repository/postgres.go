package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ardhitama/catering/internal/adapter/storage"
	"github.com/ardhitama/catering/internal/core/domain"
	"github.com/ardhitama/catering/internal/core/port"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *Repository) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	statement := r.db.QueryBuilder.
		Insert("accounts").
		Columns("username", "password_hash", "balance").
		Values(account.Username(), account.PasswordHash(), account.Balance().Decimal())

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return account, nil
}

func (r *Repository) GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.getAccount(ctx, r.db, username, false)
}

// UpdateAccount rehydrates the account under a row lock, applies updateFn and
// writes the balance and any new orders before the lock is released. The row
// lock serializes concurrent updates of the same account, so no update reads
// a balance another update is about to overwrite.
func (r *Repository) UpdateAccount(ctx context.Context, username string,
	updateFn port.UpdateAccountFn) (*domain.Account, error) {
	var account *domain.Account

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		account, err = r.getAccount(ctx, tx, username, true)
		if err != nil {
			return err
		}

		err = updateFn(account)
		if err != nil {
			return err
		}

		balanceSt := r.db.QueryBuilder.
			Update("accounts").
			Set("balance", account.Balance().Decimal()).
			Where(sq.Eq{"username": username})

		sql, args, err := balanceSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		for _, order := range account.History() {
			err = r.saveOrder(ctx, tx, order)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (r *Repository) getAccount(ctx context.Context, q querier, username string,
	forUpdate bool) (*domain.Account, error) {
	statement := r.db.QueryBuilder.
		Select("username", "password_hash", "balance").
		From("accounts").
		Where(sq.Eq{"username": username})
	if forUpdate {
		statement = statement.Suffix("FOR UPDATE")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		name    string
		hash    string
		balance decimal.Decimal
	)

	err = q.QueryRow(ctx, sql, args...).Scan(&name, &hash, &balance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	money, err := domain.NewMoney(balance)
	if err != nil {
		return nil, err
	}

	history, err := r.listOrders(ctx, q, name)
	if err != nil {
		return nil, err
	}

	return domain.RestoreAccount(name, hash, money, history), nil
}

// saveOrder is idempotent on the order id, so re-saving an account never
// duplicates history.
func (r *Repository) saveOrder(ctx context.Context, tx pgx.Tx, order *domain.Order) error {
	orderSt := r.db.QueryBuilder.
		Insert("orders").
		Columns("id", "username", "created_at").
		Values(order.ID(), order.Username(), order.CreatedAt()).
		Suffix("ON CONFLICT (id) DO NOTHING")

	sql, args, err := orderSt.ToSql()
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// already stored
		return nil
	}

	for i, line := range order.Lines() {
		lineSt := r.db.QueryBuilder.
			Insert("order_lines").
			Columns("order_id", "position", "item_id", "item_name", "unit_price", "quantity").
			Values(order.ID(), i, line.Item().ID, line.Item().Name,
				line.Item().Price.Decimal(), line.Quantity())

		sql, args, err := lineSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) listOrders(ctx context.Context, q querier, username string) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("id", "created_at").
		From("orders").
		Where(sq.Eq{"username": username}).
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type orderRow struct {
		id        string
		createdAt time.Time
	}

	orderRows := make([]orderRow, 0)
	for rows.Next() {
		var row orderRow
		err := rows.Scan(&row.id, &row.createdAt)
		if err != nil {
			return nil, err
		}
		orderRows = append(orderRows, row)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, 0, len(orderRows))
	for _, row := range orderRows {
		lines, err := r.listOrderLines(ctx, q, row.id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, domain.RestoreOrder(row.id, username, row.createdAt, lines))
	}

	return orders, nil
}

func (r *Repository) listOrderLines(ctx context.Context, q querier, orderID string) ([]domain.OrderLine, error) {
	statement := r.db.QueryBuilder.
		Select("item_id", "item_name", "unit_price", "quantity").
		From("order_lines").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]domain.OrderLine, 0)
	for rows.Next() {
		var (
			itemID   string
			itemName string
			price    decimal.Decimal
			quantity int
		)
		err := rows.Scan(&itemID, &itemName, &price, &quantity)
		if err != nil {
			return nil, err
		}

		unitPrice, err := domain.NewMoney(price)
		if err != nil {
			return nil, err
		}

		line, err := domain.NewOrderLine(domain.MenuItem{
			ID:    itemID,
			Name:  itemName,
			Price: unitPrice,
		}, quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *Repository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "description", "price").
		From("menu_items").
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *Repository) GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "description", "price").
		From("menu_items").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return domain.MenuItem{}, err
	}

	item, err := scanMenuItem(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.MenuItem{}, domain.ErrDataNotFound
		}
		return domain.MenuItem{}, err
	}

	return item, nil
}

func scanMenuItem(row pgx.Row) (domain.MenuItem, error) {
	var (
		item  domain.MenuItem
		price decimal.Decimal
	)
	err := row.Scan(&item.ID, &item.Name, &item.Description, &price)
	if err != nil {
		return domain.MenuItem{}, err
	}

	item.Price, err = domain.NewMoney(price)
	if err != nil {
		return domain.MenuItem{}, err
	}
	return item, nil
}
