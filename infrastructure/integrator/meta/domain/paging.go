package metadomain

// Page é o envelope paginado da Graph API
type Page[T any] struct {
	Data   []T    `json:"data"`
	Paging Paging `json:"paging"`
}

type Paging struct {
	Cursors  Cursors `json:"cursors"`
	Next     string  `json:"next,omitempty"`
	Previous string  `json:"previous,omitempty"`
}

type Cursors struct {
	After  string `json:"after"`
	Before string `json:"before"`
}

// NextCursor devolve o cursor da próxima página, vazio quando não há próxima
func (p Paging) NextCursor() string {
	if p.Next == "" {
		return ""
	}
	return p.Cursors.After
}
