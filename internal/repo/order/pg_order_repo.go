// Package order_repo stores conversation orders in Postgres. Vehicle,
// offers and fulfillment are kept as jsonb documents; the offers column
// is always written wholesale so a refresh can never leave a partially
// updated set.
package order_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"partsbot/internal/domain/conversation"
	"partsbot/internal/i18n"
	"partsbot/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id", "phone", "status", "language", "vehicle", "part_description",
	"offers", "chosen_offer", "fulfillment", "version",
	"last_activity_at", "created_at", "updated_at",
}

type PgOrderRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgOrderRepo(pg *postgres.Postgres) *PgOrderRepo {
	return &PgOrderRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetByPhone(ctx context.Context, phone string) (conversation.Order, error) {
	query, args, err := r.builder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"phone": phone}).
		ToSql()
	if err != nil {
		return conversation.Order{}, fmt.Errorf("build get by phone query: %w", err)
	}
	return r.getOne(ctx, query, args)
}

func (r *repo) GetByID(ctx context.Context, id string) (conversation.Order, error) {
	query, args, err := r.builder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return conversation.Order{}, fmt.Errorf("build get by id query: %w", err)
	}
	return r.getOne(ctx, query, args)
}

func (r *repo) getOne(ctx context.Context, query string, args []interface{}) (conversation.Order, error) {
	row := r.db.QueryRow(ctx, query, args...)
	ord, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return conversation.Order{}, conversation.ErrNotFound
	}
	if err != nil {
		return conversation.Order{}, fmt.Errorf("get order: %w", err)
	}
	return ord, nil
}

func (r *repo) Create(ctx context.Context, ord conversation.Order) error {
	vehicle, offers, fulfillment, err := marshalDocs(ord)
	if err != nil {
		return err
	}

	query, args, err := r.builder.Insert("orders").
		Columns(orderColumns...).
		Values(
			ord.ID, ord.Phone, string(ord.Status), string(ord.Language),
			vehicle, ord.PartDescription, offers, ord.ChosenOffer, fulfillment,
			ord.Version, ord.LastActivityAt, ord.CreatedAt, ord.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return conversation.ErrAlreadyExists
		}
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, ord conversation.Order, expectedVersion int) error {
	vehicle, offers, fulfillment, err := marshalDocs(ord)
	if err != nil {
		return err
	}

	query, args, err := r.builder.Update("orders").
		Set("status", string(ord.Status)).
		Set("language", string(ord.Language)).
		Set("vehicle", vehicle).
		Set("part_description", ord.PartDescription).
		Set("offers", offers).
		Set("chosen_offer", ord.ChosenOffer).
		Set("fulfillment", fulfillment).
		Set("version", expectedVersion+1).
		Set("last_activity_at", ord.LastActivityAt).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": ord.ID, "version": expectedVersion}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return conversation.ErrVersionConflict
	}
	return nil
}

func marshalDocs(ord conversation.Order) (vehicle, offers, fulfillment []byte, err error) {
	if ord.Vehicle != nil {
		if vehicle, err = json.Marshal(ord.Vehicle); err != nil {
			return nil, nil, nil, fmt.Errorf("marshal vehicle: %w", err)
		}
	}
	if ord.Offers != nil {
		if offers, err = json.Marshal(ord.Offers); err != nil {
			return nil, nil, nil, fmt.Errorf("marshal offers: %w", err)
		}
	}
	if ord.Fulfillment != nil {
		if fulfillment, err = json.Marshal(ord.Fulfillment); err != nil {
			return nil, nil, nil, fmt.Errorf("marshal fulfillment: %w", err)
		}
	}
	return vehicle, offers, fulfillment, nil
}

func scanOrder(row pgx.Row) (conversation.Order, error) {
	var (
		ord                          conversation.Order
		rawStatus, rawLang           string
		vehicle, offers, fulfillment []byte
	)
	err := row.Scan(
		&ord.ID, &ord.Phone, &rawStatus, &rawLang, &vehicle, &ord.PartDescription,
		&offers, &ord.ChosenOffer, &fulfillment, &ord.Version,
		&ord.LastActivityAt, &ord.CreatedAt, &ord.UpdatedAt,
	)
	if err != nil {
		return conversation.Order{}, err
	}

	ord.Status = conversation.Status(rawStatus)
	ord.Language = i18n.Language(rawLang)

	if len(vehicle) > 0 {
		ord.Vehicle = &conversation.Vehicle{}
		if err := json.Unmarshal(vehicle, ord.Vehicle); err != nil {
			return conversation.Order{}, fmt.Errorf("unmarshal vehicle: %w", err)
		}
	}
	if len(offers) > 0 {
		if err := json.Unmarshal(offers, &ord.Offers); err != nil {
			return conversation.Order{}, fmt.Errorf("unmarshal offers: %w", err)
		}
	}
	if len(fulfillment) > 0 {
		ord.Fulfillment = &conversation.Fulfillment{}
		if err := json.Unmarshal(fulfillment, ord.Fulfillment); err != nil {
			return conversation.Order{}, fmt.Errorf("unmarshal fulfillment: %w", err)
		}
	}
	return ord, nil
}
