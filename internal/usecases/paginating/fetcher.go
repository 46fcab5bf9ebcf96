// Package paginating percorre listagens paginadas por cursor da plataforma de anúncios.
package paginating

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-balance-monitor/internal/config"
	"github.com/vfg2006/ad-balance-monitor/internal/metrics"
)

// StopReason descreve por que uma paginação terminou
type StopReason string

const (
	StopExhausted      StopReason = "exhausted"
	StopRepeatedCursor StopReason = "repeated_cursor"
	StopMaxPages       StopReason = "max_pages"
	StopError          StopReason = "error"
)

// PageFunc busca uma página a partir do cursor after (vazio na primeira página).
// Devolve os itens e o próximo cursor; cursor vazio indica a última página.
type PageFunc[T any] func(ctx context.Context, after string, limit int) (items []T, next string, err error)

// Fetcher guarda os limites de paginação: tamanho de página fixo e número máximo de páginas
type Fetcher struct {
	PageSize int
	MaxPages int
	Metrics  *metrics.Metrics
}

func NewFetcher(cfg *config.Config, m *metrics.Metrics) *Fetcher {
	return &Fetcher{
		PageSize: cfg.Pagination.PageSize,
		MaxPages: cfg.Pagination.MaxPages,
		Metrics:  m,
	}
}

// Result é o acumulado de uma paginação
type Result[T any] struct {
	Items      []T
	Count      int
	Pages      int
	StopReason StopReason
}

// Walk percorre as páginas entregando cada uma para handle. Um cursor repetido ou o limite
// de páginas encerram a paginação sem erro. Um erro da página ou de handle encerra a
// paginação e é devolvido; as páginas já entregues permanecem entregues.
func Walk[T any](ctx context.Context, f *Fetcher, resource string, fetch PageFunc[T], handle func([]T) error) (int, StopReason, error) {
	seen := make(map[string]struct{})
	cursor := ""
	pages := 0

	log := logrus.WithField("resource", resource)

	for {
		if pages >= f.MaxPages {
			log.WithField("max_pages", f.MaxPages).Warn("paginação: limite máximo de páginas atingido, encerrando")
			f.Metrics.PaginationStopped(resource, string(StopMaxPages))
			return pages, StopMaxPages, nil
		}

		if err := ctx.Err(); err != nil {
			f.Metrics.PaginationStopped(resource, string(StopError))
			return pages, StopError, err
		}

		items, next, err := fetch(ctx, cursor, f.PageSize)
		if err != nil {
			log.WithFields(logrus.Fields{
				"page":  pages + 1,
				"error": err.Error(),
			}).Warn("paginação: falha ao obter página")
			f.Metrics.PaginationStopped(resource, string(StopError))
			return pages, StopError, err
		}

		pages++
		f.Metrics.PageFetched(resource)

		if len(items) > 0 {
			if err := handle(items); err != nil {
				f.Metrics.PaginationStopped(resource, string(StopError))
				return pages, StopError, err
			}
		}

		if next == "" {
			f.Metrics.PaginationStopped(resource, string(StopExhausted))
			return pages, StopExhausted, nil
		}

		if _, repeated := seen[next]; repeated {
			log.WithFields(logrus.Fields{
				"page":   pages,
				"cursor": next,
			}).Warn("paginação: cursor repetido, encerrando")
			f.Metrics.PaginationStopped(resource, string(StopRepeatedCursor))
			return pages, StopRepeatedCursor, nil
		}

		seen[next] = struct{}{}
		cursor = next
	}
}

// Collect acumula os itens de todas as páginas. Em caso de erro devolve o que foi obtido até ali.
func Collect[T any](ctx context.Context, f *Fetcher, resource string, fetch PageFunc[T]) (Result[T], error) {
	result := Result[T]{Items: make([]T, 0)}

	pages, reason, err := Walk(ctx, f, resource, fetch, func(items []T) error {
		result.Items = append(result.Items, items...)
		return nil
	})

	result.Count = len(result.Items)
	result.Pages = pages
	result.StopReason = reason

	return result, err
}
