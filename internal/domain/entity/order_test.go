package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderDisplayNumber(t *testing.T) {
	id := uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")

	assert.Equal(t, "ORD-cca427", (&Order{ID: id}).DisplayNumber())
	assert.Equal(t, "ORD-000042", (&Order{ID: id, OrderNumber: "ORD-000042"}).DisplayNumber())
	assert.Equal(t, "1b4e28ba2fa111d2883f0016d3cca427", uuidHex(id))
}

func TestOrderDisplayCustomer(t *testing.T) {
	assert.Equal(t, "Guest", (&Order{}).DisplayCustomer())
	assert.Equal(t, "Ada", (&Order{CustomerName: "Ada"}).DisplayCustomer())
}

func TestOrderItemLineTotal(t *testing.T) {
	item := OrderItem{Quantity: 3, Price: decimal.RequireFromString("2.50")}
	assert.Equal(t, "7.5", item.LineTotal().String())
}
