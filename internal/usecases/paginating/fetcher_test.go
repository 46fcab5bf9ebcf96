package paginating

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	after string
	limit int
}

// pager simula a plataforma: cada chamada devolve a página seguinte da lista
type pager struct {
	pages   [][]int
	cursors []string
	errAt   int
	calls   []call
}

func (p *pager) fetch(_ context.Context, after string, limit int) ([]int, string, error) {
	idx := len(p.calls)
	p.calls = append(p.calls, call{after: after, limit: limit})

	if p.errAt > 0 && idx+1 == p.errAt {
		return nil, "", errors.New("timeout")
	}

	var items []int
	if idx < len(p.pages) {
		items = p.pages[idx]
	}

	next := ""
	if idx < len(p.cursors) {
		next = p.cursors[idx]
	}

	return items, next, nil
}

func TestCollect(t *testing.T) {
	tests := []struct {
		name          string
		pager         *pager
		maxPages      int
		expectedItems []int
		expectedPages int
		expectedStop  StopReason
		expectErr     bool
	}{
		{
			name: "percorre todas as páginas até o cursor acabar",
			pager: &pager{
				pages:   [][]int{{1, 2}, {3, 4}, {5}},
				cursors: []string{"c1", "c2", ""},
			},
			maxPages:      10,
			expectedItems: []int{1, 2, 3, 4, 5},
			expectedPages: 3,
			expectedStop:  StopExhausted,
		},
		{
			name: "para imediatamente quando o cursor se repete",
			pager: &pager{
				pages:   [][]int{{1}, {2}, {3}, {4}},
				cursors: []string{"c1", "c2", "c1", "c3"},
			},
			maxPages:      10,
			expectedItems: []int{1, 2, 3},
			expectedPages: 3,
			expectedStop:  StopRepeatedCursor,
		},
		{
			name: "respeita o limite de páginas quando a plataforma nunca devolve página vazia",
			pager: func() *pager {
				p := &pager{}
				for i := 0; i < 100; i++ {
					p.pages = append(p.pages, []int{i})
					p.cursors = append(p.cursors, fmt.Sprintf("c%d", i))
				}
				return p
			}(),
			maxPages:      5,
			expectedItems: []int{0, 1, 2, 3, 4},
			expectedPages: 5,
			expectedStop:  StopMaxPages,
		},
		{
			name: "erro no meio devolve os itens já obtidos",
			pager: &pager{
				pages:   [][]int{{1, 2}, {3}},
				cursors: []string{"c1", "c2"},
				errAt:   2,
			},
			maxPages:      10,
			expectedItems: []int{1, 2},
			expectedPages: 1,
			expectedStop:  StopError,
			expectErr:     true,
		},
		{
			name: "página vazia sem cursor encerra",
			pager: &pager{
				pages:   [][]int{{}},
				cursors: []string{""},
			},
			maxPages:      10,
			expectedItems: []int{},
			expectedPages: 1,
			expectedStop:  StopExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Fetcher{PageSize: 25, MaxPages: tt.maxPages}

			result, err := Collect(context.Background(), f, "test", tt.pager.fetch)

			if tt.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expectedItems, result.Items)
			assert.Equal(t, len(tt.expectedItems), result.Count)
			assert.Equal(t, tt.expectedPages, result.Pages)
			assert.Equal(t, tt.expectedStop, result.StopReason)
			assert.LessOrEqual(t, len(tt.pager.calls), tt.maxPages)
		})
	}
}

func TestWalk_PassesCursorAndPageSize(t *testing.T) {
	p := &pager{
		pages:   [][]int{{1}, {2}},
		cursors: []string{"abc", ""},
	}
	f := &Fetcher{PageSize: 100, MaxPages: 50}

	_, _, err := Walk(context.Background(), f, "test", p.fetch, func([]int) error { return nil })
	require.NoError(t, err)

	assert.Equal(t, []call{{after: "", limit: 100}, {after: "abc", limit: 100}}, p.calls)
}

func TestWalk_HandlerErrorStops(t *testing.T) {
	p := &pager{
		pages:   [][]int{{1}, {2}},
		cursors: []string{"c1", ""},
	}
	f := &Fetcher{PageSize: 10, MaxPages: 10}
	handlerErr := errors.New("db down")

	pages, reason, err := Walk(context.Background(), f, "test", p.fetch, func([]int) error { return handlerErr })

	assert.ErrorIs(t, err, handlerErr)
	assert.Equal(t, 1, pages)
	assert.Equal(t, StopError, reason)
	assert.Len(t, p.calls, 1)
}

func TestWalk_CanceledContext(t *testing.T) {
	p := &pager{pages: [][]int{{1}}}
	f := &Fetcher{PageSize: 10, MaxPages: 10}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, reason, err := Walk(ctx, f, "test", p.fetch, func([]int) error { return nil })

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StopError, reason)
	assert.Empty(t, p.calls)
}
