package static

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-tracker-api/infrastructure/datasource"
	"github.com/vfg2006/campaign-tracker-api/internal/domain"
)

// Source lê as campanhas de um arquivo JSON. O arquivo é relido a cada chamada.
type Source struct {
	path string
}

func New(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Name() string {
	return "static"
}

func (s *Source) ListCampaigns(ctx context.Context) ([]domain.CampaignRecord, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Campaigns, nil
}

func (s *Source) DailyRevenue(ctx context.Context) ([]domain.DailyRevenuePoint, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Trend()
}

func (s *Source) load(ctx context.Context) (*datasource.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read campaign file %s", s.path)
	}

	return datasource.DecodeDocument(data)
}
