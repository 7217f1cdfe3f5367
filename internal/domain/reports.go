package domain

// CategoryShare is a single-entry map {category: percent}, kept in that
// shape for existing dashboard clients.
type CategoryShare map[string]float64

type ChangePercent struct {
	Revenue float64 `json:"revenue"`
	Product float64 `json:"product"`
	User    float64 `json:"user"`
	Order   float64 `json:"order"`
}

type Counts struct {
	User    int64   `json:"user"`
	Product int64   `json:"product"`
	Order   int64   `json:"order"`
	Revenue float64 `json:"revenue"`
}

type StatsChart struct {
	Order   []float64 `json:"order"`
	Revenue []float64 `json:"revenue"`
}

type UserRatio struct {
	Male   int64 `json:"male"`
	Female int64 `json:"female"`
}

type Transaction struct {
	ID       string      `json:"_id"`
	Discount float64     `json:"discount"`
	Amount   float64     `json:"amount"`
	Quantity int         `json:"quantity"`
	Status   OrderStatus `json:"status"`
}

type DashboardStats struct {
	CategoriesCount   []CategoryShare `json:"categoriesCount"`
	ChangePercent     ChangePercent   `json:"changePercent"`
	Count             Counts          `json:"count"`
	Chart             StatsChart      `json:"chart"`
	UserRatio         UserRatio       `json:"userRatio"`
	LatestTransaction []Transaction   `json:"latestTransaction"`
}

type OrderFulfillment struct {
	Processing int64 `json:"processing"`
	Shipped    int64 `json:"shipped"`
	Delivered  int64 `json:"delivered"`
}

type StockAvailability struct {
	InStock    int64 `json:"inStock"`
	OutOfStock int64 `json:"outOfStock"`
}

type RevenueDistribution struct {
	NetMargin      float64 `json:"netMargin"`
	Discount       float64 `json:"discount"`
	ProductionCost float64 `json:"productionCost"`
	Burnt          float64 `json:"burnt"`
	MarketingCost  float64 `json:"marketingCost"`
}

type AdminCustomer struct {
	Admin    int64 `json:"admin"`
	Customer int64 `json:"customer"`
}

type UsersAgeGroup struct {
	Teen  int `json:"teen"`
	Adult int `json:"adult"`
	Old   int `json:"old"`
}

type PieChartData struct {
	OrderFullfillment   OrderFulfillment    `json:"orderFullfillment"`
	ProductCategories   []CategoryShare     `json:"productCategories"`
	StockAvailability   StockAvailability   `json:"stockAvailability"`
	RevenueDistribution RevenueDistribution `json:"revenueDistribution"`
	AdminCustomer       AdminCustomer       `json:"adminCustomer"`
	UsersAgeGroup       UsersAgeGroup       `json:"usersAgeGroup"`
}

type BarChartData struct {
	Products []float64 `json:"products"`
	Users    []float64 `json:"users"`
	Orders   []float64 `json:"orders"`
}

type LineChartData struct {
	Products []float64 `json:"products"`
	Users    []float64 `json:"users"`
	Discount []float64 `json:"discount"`
	Revenue  []float64 `json:"revenue"`
}
