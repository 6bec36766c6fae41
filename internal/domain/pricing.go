package domain

// Prices in Thai Baht (whole units, no minor denomination).
const (
	PriceSale    = 990  // discounted single-box price
	PriceSticker = 1290 // full sticker price
	PriceBundle3 = 2690 // fixed 3-box bundle price
	PriceYear    = 4990 // fixed full-year subscription price
)

// ValidUnitPrice reports whether p is one of the two accepted single-box prices.
func ValidUnitPrice(p int) bool {
	return p == PriceSale || p == PriceSticker
}

// DeriveTotal computes the total amount for a sale outcome.
// Single sales multiply quantity by unit price; bundles and subscriptions
// carry fixed prices; no-sale totals zero.
func DeriveTotal(saleType SaleType, quantity, unitPrice int) int {
	switch saleType {
	case SaleSingle:
		if quantity < 1 {
			quantity = 1
		}
		return quantity * unitPrice
	case SaleBundle3:
		return PriceBundle3
	case SaleFullYear:
		return PriceYear
	default:
		return 0
	}
}

// BoxCount returns the number of physical boxes a sale represents.
// Full-year subscriptions ship one box per month.
func BoxCount(saleType SaleType, quantity int) int {
	switch saleType {
	case SaleSingle:
		if quantity < 1 {
			quantity = 1
		}
		return quantity
	case SaleBundle3:
		return 3
	case SaleFullYear:
		return 12
	default:
		return 0
	}
}
