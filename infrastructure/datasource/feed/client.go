package feed

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-tracker-api/infrastructure/datasource"
	"github.com/vfg2006/campaign-tracker-api/internal/domain"
	"github.com/vfg2006/campaign-tracker-api/pkg/utils"
)

// Client busca as campanhas de um endpoint HTTP que devolve o mesmo JSON da fonte static
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Name() string {
	return "feed"
}

func (c *Client) ListCampaigns(ctx context.Context) ([]domain.CampaignRecord, error) {
	doc, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Campaigns, nil
}

func (c *Client) DailyRevenue(ctx context.Context) ([]domain.DailyRevenuePoint, error) {
	doc, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Trend()
}

func (c *Client) fetch(ctx context.Context) (*datasource.Document, error) {
	start := time.Now()

	body, err := utils.MakeRequest(ctx, c.httpClient, c.url)
	if err != nil {
		logrus.WithError(err).WithField("url", c.url).Error("feed: erro ao buscar campanhas")
		return nil, errors.Wrap(err, "fetch campaign feed")
	}

	doc, err := datasource.DecodeDocument(body)
	if err != nil {
		logrus.WithError(err).WithField("url", c.url).Error("feed: resposta inválida")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"url":         c.url,
		"campaigns":   len(doc.Campaigns),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("feed: campanhas obtidas")

	return doc, nil
}
