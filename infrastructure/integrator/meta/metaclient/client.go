package metaclient

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	metadomain "github.com/vfg2006/ad-balance-monitor/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-balance-monitor/internal/config"
	"github.com/vfg2006/ad-balance-monitor/internal/domain"
	"github.com/vfg2006/ad-balance-monitor/internal/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrTokenExpired indica que a plataforma recusou o token do perfil
var ErrTokenExpired = errors.New("meta access token expired")

// errRequestRejected marca respostas 4xx: a plataforma está de pé e recusou a chamada
var errRequestRejected = errors.New("meta request rejected")

// Relações de um business com as contas de anúncio
const (
	RelationOwned  = "owned_ad_accounts"
	RelationClient = "client_ad_accounts"
)

type Client interface {
	ListAdAccounts(ctx context.Context, token string, after string, limit int) (*metadomain.Page[metadomain.AdAccount], error)
	ListAccountInsights(ctx context.Context, accountID, token string, since, until time.Time, after string, limit int) (*metadomain.Page[metadomain.DailySpendInsight], error)
	ListBusinessAccounts(ctx context.Context, businessID, relation, token string, after string, limit int) (*metadomain.Page[metadomain.AdAccount], error)
	GetTodaySpend(ctx context.Context, accountID, token string) (decimal.Decimal, error)
}

type MetaClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	metrics    *metrics.Metrics
}

func NewClient(cfg *config.Config, m *metrics.Metrics) Client {
	return &MetaClient{
		baseURL:    cfg.Meta.URL,
		httpClient: &http.Client{Timeout: cfg.Meta.RequestTimeout()},
		breaker:    newBreaker("meta-graph-api"),
		metrics:    m,
	}
}

// newBreaker abre o circuito quando a maioria das chamadas recentes falha,
// evitando martelar a plataforma durante uma indisponibilidade. Não há retry.
// Token expirado e respostas 4xx são problema de um perfil e não contam como falha.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.6
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrTokenExpired) || errors.Is(err, errRequestRejected)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("meta: circuit breaker mudou de estado")
		},
	})
}

// get executa um GET na Graph API e decodifica o corpo em out.
// Toda falha é devolvida embrulhada em domain.ErrTransientNetwork.
func (c *MetaClient) get(ctx context.Context, operation, path string, params url.Values, out any) error {
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode())

	_, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
		}
		defer resp.Body.Close()

		body, err := c.HandleResponse(resp)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(body, out); err != nil {
			return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
		}

		return nil, nil
	})
	if err != nil {
		c.metrics.PlatformError(operation)
		logrus.WithFields(logrus.Fields{
			"operation": operation,
			"path":      path,
			"error":     err.Error(),
		}).Warn("meta: falha na chamada à Graph API")
		return fmt.Errorf("%w: %s: %w", domain.ErrTransientNetwork, operation, err)
	}

	return nil
}

// HandleResponse lê o corpo e converte respostas de erro da Graph API
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errorResp metadomain.ErrorResponse
	if parseErr := json.Unmarshal(body, &errorResp); parseErr == nil && errorResp.Error.Code != 0 {
		if errorResp.IsTokenExpired() {
			return nil, fmt.Errorf("%w: %s", ErrTokenExpired, errorResp.String())
		}
		if resp.StatusCode < http.StatusInternalServerError {
			return nil, fmt.Errorf("%w: status %d: %s", errRequestRejected, resp.StatusCode, errorResp.String())
		}
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, errorResp.String())
	}

	if resp.StatusCode < http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status %d, corpo: %s", errRequestRejected, resp.StatusCode, string(body))
	}
	return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
}

func pageParams(token, fields, after string, limit int) url.Values {
	params := url.Values{}
	params.Add("fields", fields)
	params.Add("access_token", token)
	if limit > 0 {
		params.Add("limit", fmt.Sprintf("%d", limit))
	}
	if after != "" {
		params.Add("after", after)
	}
	return params
}

func accountPath(accountID string) string {
	return metadomain.AccountIDPrefix + metadomain.NormalizeAccountID(accountID)
}
