package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/admin/domain"
)

func TestCoercePrice(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want float64
		ok   bool
	}{
		{name: "float64", raw: 12.5, want: 12.5, ok: true},
		{name: "int", raw: 7, want: 7, ok: true},
		{name: "int32", raw: int32(3), want: 3, ok: true},
		{name: "int64", raw: int64(9), want: 9, ok: true},
		{name: "numeric string", raw: "19.99", want: 19.99, ok: true},
		{name: "padded string", raw: " 5.5 ", want: 5.5, ok: true},
		{name: "garbage string", raw: "n/a", ok: false},
		{name: "nil", raw: nil, ok: false},
		{name: "bool", raw: true, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CoercePrice(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestAveragePriceEmptyMapIsZero(t *testing.T) {
	assert.Zero(t, AveragePrice(nil))
	assert.Zero(t, AveragePrice(map[string]domain.PriceEntry{}))
}

func TestAveragePriceMean(t *testing.T) {
	entries := map[string]domain.PriceEntry{
		"Carrefour": {Price: 10, Known: true},
		"Monoprix":  {Price: 20, Known: true},
		"Geant":     {Price: 33, Known: true},
	}
	assert.InDelta(t, 21.0, AveragePrice(entries), 1e-9)
}

func TestAveragePriceSkipsUnknownEntries(t *testing.T) {
	entries := map[string]domain.PriceEntry{
		"Carrefour": {Price: 10, Known: true},
		"Monoprix":  {Known: false},
		"Geant":     {Price: 30, Known: true},
	}
	// The unreadable entry counts toward neither sum nor divisor.
	assert.InDelta(t, 20.0, AveragePrice(entries), 1e-9)
}

func TestAveragePriceAllUnknownIsZero(t *testing.T) {
	entries := map[string]domain.PriceEntry{
		"Carrefour": {Known: false},
	}
	assert.Zero(t, AveragePrice(entries))
}

func TestAveragePriceIdempotent(t *testing.T) {
	entries := map[string]domain.PriceEntry{
		"Carrefour": {Price: 12.3, Known: true, UpdatedAt: time.Now()},
		"Monoprix":  {Price: 45.6, Known: true},
	}
	first := AveragePrice(entries)
	second := AveragePrice(entries)
	require.Equal(t, first, second)
}
