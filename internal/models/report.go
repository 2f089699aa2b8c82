package models

// MonthlyPoint is one bucket of the trailing-months order/revenue series.
type MonthlyPoint struct {
	Name    string  `json:"name"`
	Month   int     `json:"month"`
	Year    int     `json:"year"`
	Orders  int     `json:"orders"`
	Amount  float64 `json:"amount"`
}

// StatusCount is one slice of the dashboard status-distribution chart.
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// RecentOrder is a dashboard row for one of the latest orders.
type RecentOrder struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Status   string `json:"status"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
}

// DashboardSummary aggregates everything the dashboard renders.
type DashboardSummary struct {
	Customers    int            `json:"customers"`
	Riders       int            `json:"riders"`
	Partners     int            `json:"partners"`
	Orders       int            `json:"orders"`
	Revenue      float64        `json:"revenue"`
	Monthly      []MonthlyPoint `json:"monthly"`
	Distribution []StatusCount  `json:"statusDistribution"`
	Recent       []RecentOrder  `json:"recentOrders"`
}
