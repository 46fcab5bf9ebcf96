package metaclient

import (
	"context"

	metadomain "github.com/vfg2006/ad-balance-monitor/infrastructure/integrator/meta/domain"
)

// ListAdAccounts lista uma página das contas de anúncio acessíveis pelo token
func (c *MetaClient) ListAdAccounts(ctx context.Context, token string, after string, limit int) (*metadomain.Page[metadomain.AdAccount], error) {
	params := pageParams(token, metadomain.AdAccountFields, after, limit)

	var page metadomain.Page[metadomain.AdAccount]
	if err := c.get(ctx, "list_ad_accounts", "me/adaccounts", params, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// ListBusinessAccounts lista uma página das contas de uma relação do business
// (owned_ad_accounts ou client_ad_accounts)
func (c *MetaClient) ListBusinessAccounts(ctx context.Context, businessID, relation, token string, after string, limit int) (*metadomain.Page[metadomain.AdAccount], error) {
	params := pageParams(token, metadomain.BusinessAdAccountFields, after, limit)

	var page metadomain.Page[metadomain.AdAccount]
	if err := c.get(ctx, "list_business_accounts", businessID+"/"+relation, params, &page); err != nil {
		return nil, err
	}

	return &page, nil
}
