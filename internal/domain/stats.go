package domain

type Stats struct {
	TotalProducts   int64
	TotalOrders     int64
	PendingOrders   int64
	CompletedOrders int64
	TotalRevenue    float64
}
