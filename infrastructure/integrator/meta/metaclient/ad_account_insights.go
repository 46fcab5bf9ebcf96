package metaclient

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	metadomain "github.com/vfg2006/ad-balance-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
)

// ListAccountInsights lista uma página do gasto diário (time_increment=1) entre since e until, inclusive
func (c *MetaClient) ListAccountInsights(ctx context.Context, accountID, token string, since, until time.Time, after string, limit int) (*metadomain.Page[metadomain.DailySpendInsight], error) {
	params := pageParams(token, metadomain.InsightFields, after, limit)
	params.Add("level", "account")
	params.Add("time_increment", "1")
	params.Add("time_range", fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", since.Format(time.DateOnly), until.Format(time.DateOnly)))

	var page metadomain.Page[metadomain.DailySpendInsight]
	if err := c.get(ctx, "list_account_insights", accountPath(accountID)+"/insights", params, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// GetTodaySpend consulta o gasto de hoje (date_preset=today) na unidade principal da moeda.
// Sem linhas de insight o gasto é zero.
func (c *MetaClient) GetTodaySpend(ctx context.Context, accountID, token string) (decimal.Decimal, error) {
	params := pageParams(token, "spend", "", 0)
	params.Add("date_preset", "today")

	var page metadomain.Page[metadomain.DailySpendInsight]
	if err := c.get(ctx, "get_today_spend", accountPath(accountID)+"/insights", params, &page); err != nil {
		return decimal.Zero, err
	}

	if len(page.Data) == 0 {
		return decimal.Zero, nil
	}

	return domain.ParseAmount(page.Data[0].Spend)
}
