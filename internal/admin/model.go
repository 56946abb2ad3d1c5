package admin

// Totals is the platform-wide aggregate view.
type Totals struct {
	UsersByRole          map[string]int `json:"usersByRole"`
	JobsByStatus         map[string]int `json:"jobsByStatus"`
	ApplicationsByStatus map[string]int `json:"applicationsByStatus"`
	Chapters             int            `json:"chapters"`
}
