package recommendation

import (
	"strconv"

	"cogni-recommender/internal/catalog"
)

// SeatRate is the monthly per-seat price used outside the price table.
const SeatRate = 49

type priceKey struct {
	pkg   string
	seats int
}

// priceTable covers exactly the pairs the classifier produces.
var priceTable = map[priceKey]int{
	{catalog.FreshStart, 4}:        196,
	{catalog.PracticePlus, 6}:      294,
	{catalog.PracticePlus, 8}:      392,
	{catalog.CommunityAccess, 16}:  784,
	{catalog.CommunityAccess, 20}:  980,
	{catalog.EnterpriseCare, 20}:   980,
	{catalog.EnterpriseAccess, 20}: 980,
}

// PriceFor returns the monthly estimate for a package and seat count.
func PriceFor(pkg string, seats int) int {
	if price, ok := priceTable[priceKey{pkg, seats}]; ok {
		return price
	}
	return seats * SeatRate
}

// FormatPrice renders a whole-dollar price, e.g. "$196".
func FormatPrice(price int) string {
	return "$" + strconv.Itoa(price)
}
