package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewProduct struct {
	Name  string              `json:"name"`
	Price decimal.NullDecimal `json:"price"`
}

type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type NewMenuGroup struct {
	Name string `json:"name"`
}

type MenuGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type NewMenuProduct struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type MenuProduct struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type NewMenu struct {
	Name         string              `json:"name"`
	Price        decimal.NullDecimal `json:"price"`
	MenuGroupID  int64               `json:"menuGroupId"`
	MenuProducts []NewMenuProduct    `json:"menuProducts"`
}

type Menu struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	MenuGroupID  int64           `json:"menuGroupId"`
	MenuProducts []MenuProduct   `json:"menuProducts"`
}

type NewOrderTable struct {
	NumberOfGuests int  `json:"numberOfGuests"`
	Empty          bool `json:"empty"`
}

type OrderTable struct {
	ID             int64  `json:"id"`
	TableGroupID   *int64 `json:"tableGroupId"`
	NumberOfGuests int    `json:"numberOfGuests"`
	Empty          bool   `json:"empty"`
}

type ChangeEmpty struct {
	Empty bool `json:"empty"`
}

type ChangeNumberOfGuests struct {
	NumberOfGuests int `json:"numberOfGuests"`
}

type NewTableGroup struct {
	OrderTableIDs []int64 `json:"orderTableIds"`
}

type TableGroup struct {
	ID            int64     `json:"id"`
	CreatedDate   time.Time `json:"createdDate"`
	OrderTableIDs []int64   `json:"orderTableIds"`
}

type NewOrderLineItem struct {
	MenuID   int64 `json:"menuId"`
	Quantity int64 `json:"quantity"`
}

type OrderLineItem struct {
	MenuID    int64           `json:"menuId"`
	MenuName  string          `json:"menuName"`
	MenuPrice decimal.Decimal `json:"menuPrice"`
	Quantity  int64           `json:"quantity"`
}

type NewOrder struct {
	OrderTableID   int64              `json:"orderTableId"`
	OrderLineItems []NewOrderLineItem `json:"orderLineItems"`
}

type Order struct {
	ID             int64           `json:"id"`
	OrderTableID   int64           `json:"orderTableId"`
	OrderStatus    string          `json:"orderStatus"`
	OrderedTime    time.Time       `json:"orderedTime"`
	OrderLineItems []OrderLineItem `json:"orderLineItems"`
}

type ChangeOrderStatus struct {
	OrderStatus string `json:"orderStatus"`
}

type AddOrderLineItems struct {
	OrderLineItems []NewOrderLineItem `json:"orderLineItems"`
}
