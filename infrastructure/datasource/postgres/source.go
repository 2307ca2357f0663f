package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-tracker-api/internal/domain"
	"github.com/vfg2006/campaign-tracker-api/pkg/log"
)

const dailyRevenueTable = "campaign_daily_revenue"

// Source lê as campanhas de uma tabela Postgres
type Source struct {
	conn  postgres.Conn
	table string
}

func New(conn postgres.Conn, table string) *Source {
	return &Source{conn: conn, table: table}
}

func (s *Source) Name() string {
	return "postgres"
}

// BuildListQuery monta o SELECT das campanhas, ordenado por nome
func BuildListQuery(table string) (string, []interface{}, error) {
	return squirrel.
		Select("name", "spend", "revenue", "impressions", "clicks").
		From(table).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// BuildTrendQuery monta o SELECT da receita diária acumulada a partir de uma data
func BuildTrendQuery(since time.Time) (string, []interface{}, error) {
	return squirrel.
		Select("day", "total_revenue").
		From(dailyRevenueTable).
		Where(squirrel.GtOrEq{"day": since}).
		OrderBy("day ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (s *Source) ListCampaigns(ctx context.Context) ([]domain.CampaignRecord, error) {
	query, args, err := BuildListQuery(s.table)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	records := make([]domain.CampaignRecord, 0)

	err = s.conn.RunReadOnly(ctx, func(q postgres.Queryer) error {
		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return errors.Wrap(err, "erro ao executar a query")
		}
		defer rows.Close()

		for index := 0; rows.Next(); index++ {
			record, err := scanCampaign(rows, index)
			if err != nil {
				return err
			}
			records = append(records, record)
		}

		return rows.Err()
	})
	if err != nil {
		log.L.WithError(err).WithField("table", s.table).Error("postgres: falha ao listar campanhas")
		return nil, err
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanCampaign lê uma linha da tabela de campanhas. Colunas numéricas nulas
// viram um RecordError em vez de zero.
func scanCampaign(row rowScanner, index int) (domain.CampaignRecord, error) {
	var (
		name        string
		spend       sql.NullFloat64
		revenue     sql.NullFloat64
		impressions sql.NullInt64
		clicks      sql.NullInt64
	)
	if err := row.Scan(&name, &spend, &revenue, &impressions, &clicks); err != nil {
		return domain.CampaignRecord{}, errors.Wrap(err, "erro ao ler campanha")
	}

	nulls := []struct {
		field string
		valid bool
	}{
		{"Spend", spend.Valid},
		{"Revenue", revenue.Valid},
		{"Impressions", impressions.Valid},
		{"Clicks", clicks.Valid},
	}
	for _, column := range nulls {
		if !column.valid {
			return domain.CampaignRecord{}, &domain.RecordError{Index: index, Name: name, Field: column.field, Reason: "null"}
		}
	}

	return domain.CampaignRecord{
		Name:        name,
		Spend:       spend.Float64,
		Revenue:     revenue.Float64,
		Impressions: impressions.Int64,
		Clicks:      clicks.Int64,
	}, nil
}

// DailyRevenue devolve os últimos 30 dias da tabela de receita diária
func (s *Source) DailyRevenue(ctx context.Context) ([]domain.DailyRevenuePoint, error) {
	query, args, err := BuildTrendQuery(time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	points := make([]domain.DailyRevenuePoint, 0)

	err = s.conn.RunReadOnly(ctx, func(q postgres.Queryer) error {
		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return errors.Wrap(err, "erro ao executar a query")
		}
		defer rows.Close()

		for rows.Next() {
			var point domain.DailyRevenuePoint
			if err := rows.Scan(&point.Date, &point.TotalRevenue); err != nil {
				return errors.Wrap(err, "erro ao ler receita diária")
			}
			points = append(points, point)
		}

		return rows.Err()
	})
	if err != nil {
		log.L.WithError(err).Error("postgres: falha ao ler receita diária")
		return nil, err
	}

	return points, nil
}
