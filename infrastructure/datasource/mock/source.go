// Package mock gera campanhas e tendência de receita pseudoaleatórias e
// determinísticas: a mesma semente produz sempre os mesmos dados.
package mock

import (
	"context"
	"math/rand"
	"time"

	"github.com/vfg2006/campaign-tracker-api/internal/domain"
	"github.com/vfg2006/campaign-tracker-api/pkg/utils"
)

// Campaigns são os nomes das campanhas geradas
var Campaigns = []string{
	"Social Media Blast",
	"Google Ads",
	"Email Newsletter",
	"Influencer Collab",
	"Content Marketing",
}

// Faixas [min, max) de cada coluna gerada
const (
	spendMin, spendMax             = 8000, 35000
	revenueMin, revenueMax         = 15000, 80000
	impressionsMin, impressionsMax = 50000, 300000
	clicksMin, clicksMax           = 2000, 15000

	dailyRevenueMean   = 5000
	dailyRevenueStdDev = 1200
)

type Source struct {
	seed       int64
	trendStart time.Time
	trendDays  int
}

func New(seed int64, trendStart time.Time, trendDays int) *Source {
	return &Source{
		seed:       seed,
		trendStart: trendStart,
		trendDays:  trendDays,
	}
}

func (s *Source) Name() string {
	return "mock"
}

func (s *Source) ListCampaigns(ctx context.Context) ([]domain.CampaignRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, _ := s.generate()
	return records, nil
}

func (s *Source) DailyRevenue(ctx context.Context) ([]domain.DailyRevenuePoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, trend := s.generate()
	return trend, nil
}

// generate sorteia as colunas na ordem spend, revenue, impressions, clicks e
// depois a tendência, sempre a partir de um gerador novo com a mesma semente.
func (s *Source) generate() ([]domain.CampaignRecord, []domain.DailyRevenuePoint) {
	rng := rand.New(rand.NewSource(s.seed))

	records := make([]domain.CampaignRecord, len(Campaigns))
	for i, name := range Campaigns {
		records[i].Name = name
	}
	for i := range records {
		records[i].Spend = float64(between(rng, spendMin, spendMax))
	}
	for i := range records {
		records[i].Revenue = float64(between(rng, revenueMin, revenueMax))
	}
	for i := range records {
		records[i].Impressions = between(rng, impressionsMin, impressionsMax)
	}
	for i := range records {
		records[i].Clicks = between(rng, clicksMin, clicksMax)
	}

	trend := make([]domain.DailyRevenuePoint, 0, s.trendDays)
	cumulative := 0.0
	for day := 0; day < s.trendDays; day++ {
		cumulative += rng.NormFloat64()*dailyRevenueStdDev + dailyRevenueMean
		trend = append(trend, domain.DailyRevenuePoint{
			Date:         s.trendStart.AddDate(0, 0, day),
			TotalRevenue: utils.Round(cumulative, 0),
		})
	}

	return records, trend
}

func between(rng *rand.Rand, lo, hi int64) int64 {
	return lo + rng.Int63n(hi-lo)
}
