package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-tracker-api/internal/domain"
	"github.com/vfg2006/campaign-tracker-api/pkg/log"
)

type failingConn struct {
	postgres.Queryer
	err   error
	calls int
}

func (f *failingConn) Close() error                   { return nil }
func (f *failingConn) Ping(ctx context.Context) error { return nil }
func (f *failingConn) RunReadOnly(ctx context.Context, fn func(postgres.Queryer) error) error {
	f.calls++
	return f.err
}

func TestBuildListQuery(t *testing.T) {
	query, args, err := BuildListQuery("campaign_performance")
	require.NoError(t, err)
	assert.Equal(t, "SELECT name, spend, revenue, impressions, clicks FROM campaign_performance ORDER BY name ASC", query)
	assert.Empty(t, args)
}

func TestBuildTrendQuery(t *testing.T) {
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := BuildTrendQuery(since)
	require.NoError(t, err)
	assert.Equal(t, "SELECT day, total_revenue FROM campaign_daily_revenue WHERE day >= $1 ORDER BY day ASC", query)
	assert.Equal(t, []interface{}{since}, args)
}

func TestSource_ListCampaigns_PropagatesError(t *testing.T) {
	log.SetupTestLogger()

	conn := &failingConn{err: errors.New("connection refused")}
	source := New(conn, "campaign_performance")

	assert.Equal(t, "postgres", source.Name())

	records, err := source.ListCampaigns(context.Background())
	assert.Nil(t, records)
	assert.EqualError(t, err, "connection refused")

	_, err = source.ListCampaigns(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 2, conn.calls)
}

func TestSource_DailyRevenue_PropagatesError(t *testing.T) {
	log.SetupTestLogger()

	conn := &failingConn{err: errors.New("timeout")}
	points, err := New(conn, "campaign_performance").DailyRevenue(context.Background())
	assert.Nil(t, points)
	assert.Error(t, err)
}

type fakeRow struct {
	values []interface{}
	err    error
}

func (f fakeRow) Scan(dest ...interface{}) error {
	if f.err != nil {
		return f.err
	}
	for i, value := range f.values {
		switch target := dest[i].(type) {
		case *string:
			*target = value.(string)
		case *sql.NullFloat64:
			if value != nil {
				*target = sql.NullFloat64{Float64: value.(float64), Valid: true}
			}
		case *sql.NullInt64:
			if value != nil {
				*target = sql.NullInt64{Int64: value.(int64), Valid: true}
			}
		}
	}
	return nil
}

func TestScanCampaign(t *testing.T) {
	tests := []struct {
		name      string
		row       fakeRow
		want      domain.CampaignRecord
		wantField string
		wantErr   string
	}{
		{
			name: "linha completa",
			row:  fakeRow{values: []interface{}{"Google Ads", 32000.0, 98000.0, int64(150000), int64(12750)}},
			want: domain.CampaignRecord{Name: "Google Ads", Spend: 32000, Revenue: 98000, Impressions: 150000, Clicks: 12750},
		},
		{
			name:      "spend nulo",
			row:       fakeRow{values: []interface{}{"Orgânico", nil, 500.0, int64(10), int64(1)}},
			wantField: "Spend",
		},
		{
			name:      "revenue nulo",
			row:       fakeRow{values: []interface{}{"Orgânico", 100.0, nil, int64(10), int64(1)}},
			wantField: "Revenue",
		},
		{
			name:      "clicks nulo",
			row:       fakeRow{values: []interface{}{"Orgânico", 100.0, 500.0, int64(10), nil}},
			wantField: "Clicks",
		},
		{
			name:    "falha no scan",
			row:     fakeRow{err: errors.New("bad column")},
			wantErr: "erro ao ler campanha: bad column",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scanCampaign(tt.row, 3)

			switch {
			case tt.wantField != "":
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidRecord))

				var recordErr *domain.RecordError
				require.True(t, errors.As(err, &recordErr))
				assert.Equal(t, tt.wantField, recordErr.Field)
				assert.Equal(t, 3, recordErr.Index)
				assert.Equal(t, "Orgânico", recordErr.Name)
				assert.Equal(t, "null", recordErr.Reason)
			case tt.wantErr != "":
				assert.EqualError(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
