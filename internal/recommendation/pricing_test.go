package recommendation

import (
	"testing"

	"cogni-recommender/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestPriceFor(t *testing.T) {
	tests := []struct {
		pkg   string
		seats int
		want  int
	}{
		{catalog.FreshStart, 4, 196},
		{catalog.PracticePlus, 6, 294},
		{catalog.PracticePlus, 8, 392},
		{catalog.CommunityAccess, 16, 784},
		{catalog.CommunityAccess, 20, 980},
		{catalog.EnterpriseCare, 20, 980},
		{catalog.EnterpriseAccess, 20, 980},

		// Outside the table the per-seat rate applies.
		{catalog.FreshStart, 7, 343},
		{catalog.EnterpriseCare, 1, 49},
		{"Unknown", 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PriceFor(tt.pkg, tt.seats), "%s/%d", tt.pkg, tt.seats)
	}
}

func TestPriceFor_TableMatchesSeatRate(t *testing.T) {
	for k, price := range priceTable {
		assert.Equal(t, k.seats*SeatRate, price, "%s/%d", k.pkg, k.seats)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$196", FormatPrice(196))
	assert.Equal(t, "$0", FormatPrice(0))
	assert.Equal(t, "$980", FormatPrice(980))
}
