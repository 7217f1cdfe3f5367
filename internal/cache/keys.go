package cache

import "strings"

const (
	KeyAllOrders      = "all-orders"
	KeyLatestProducts = "latest-products"
	KeyCategories     = "categories"
	KeyAllProducts    = "all-products"

	KeyAdminStats     = "admin-stats"
	KeyAdminPieChart  = "admin-pie-chart"
	KeyAdminBarChart  = "admin-bar-chart"
	KeyAdminLineChart = "admin-line-chart"

	prefixMyOrders = "my-orders-"
	prefixOrder    = "order-"
	prefixProduct  = "product-"
)

// AdminKeys are the four dashboard report keys.
var AdminKeys = []string{KeyAdminStats, KeyAdminPieChart, KeyAdminBarChart, KeyAdminLineChart}

func MyOrdersKey(userID string) string { return prefixMyOrders + userID }
func OrderKey(orderID string) string   { return prefixOrder + orderID }
func ProductKey(id string) string      { return prefixProduct + id }

// Family strips the entity id from a key so it can be used as a metric label.
func Family(key string) string {
	for _, p := range []string{prefixMyOrders, prefixOrder, prefixProduct} {
		if strings.HasPrefix(key, p) {
			return strings.TrimSuffix(p, "-")
		}
	}
	return key
}
