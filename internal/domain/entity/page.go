package entity

// PageID identifies one page load inside a page host.
type PageID string

// PageState is a snapshot of a page's presentation. Theme is nil while inactive.
type PageState struct {
	Active bool   `json:"enabled"`
	Theme  *Theme `json:"theme"`
}

// PageInfo describes a page known to the hub.
type PageInfo struct {
	ID      PageID `json:"id"`
	URL     string `json:"url"`
	Host    string `json:"host"`
	AgentID string `json:"agent_id"`
	Focused bool   `json:"focused"`
}
