package entities

import "time"

type OrderItem struct {
	OrderID     int64
	OrderItemID int64
	BaseBidID   int64
	OrderHash   string
	MarketKey   string

	Buyflow BuyFlowType
	Status  BuyFlowOrderType

	BuyerAddress  string
	SellerAddress string

	Created time.Time
	Updated time.Time

	Listing         *ListingSummary
	Pricing         *Pricing
	ShippingDetails *ShippingDetails
	ContactDetails  *ContactDetails
	ExtraDetails    *ExtraDetails
}

type ListingSummary struct {
	ID         int64
	Title      string
	Image      string
	Hash       string
	HashPrefix string
}

// PriceItem - сумма в минимальных единицах (partoshi).
type PriceItem struct {
	Amount int64
}

type Pricing struct {
	BasePrice     PriceItem
	ShippingPrice PriceItem
	SubTotal      PriceItem
	EscrowAmount  PriceItem
	TotalRequired PriceItem
}

type ShippingDetails struct {
	Name         string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Code         string
	Country      string
}

type ContactDetails struct {
	Phone string
	Email string
}

type ExtraDetails struct {
	EscrowMemo      string
	ShippingMemo    string
	ReleaseMemo     string
	EscrowTxn       string
	ReleaseTxn      string
	RejectionReason string
}

// RoleOf определяет роль адреса в заказе. ok=false если адрес не участвует.
func (o OrderItem) RoleOf(address string) (OrderUserType, bool) {
	switch {
	case address == "":
		return "", false
	case o.SellerAddress == address:
		return UserSeller, true
	case o.BuyerAddress == address:
		return UserBuyer, true
	default:
		return "", false
	}
}

// Clone возвращает глубокую копию: опциональные части не разделяются с оригиналом.
func (o OrderItem) Clone() OrderItem {
	c := o
	if o.Listing != nil {
		v := *o.Listing
		c.Listing = &v
	}
	if o.Pricing != nil {
		v := *o.Pricing
		c.Pricing = &v
	}
	if o.ShippingDetails != nil {
		v := *o.ShippingDetails
		c.ShippingDetails = &v
	}
	if o.ContactDetails != nil {
		v := *o.ContactDetails
		c.ContactDetails = &v
	}
	if o.ExtraDetails != nil {
		v := *o.ExtraDetails
		c.ExtraDetails = &v
	}
	return c
}

// OrderSnapshot - полный набор заказов identity на момент опроса.
type OrderSnapshot struct {
	Items     []OrderItem
	FetchedAt time.Time
}

// OrderAction - запрос на выполнение действия над заказом (REST или Kafka).
type OrderAction struct {
	OrderItemID int64
	ToState     BuyFlowOrderType
	Role        OrderUserType
	Params      ActionTransitionParams
}

// OrderItemView - заказ вместе с описанием его текущего состояния для роли.
type OrderItemView struct {
	Item         OrderItem
	Role         OrderUserType
	CurrentState BuyflowStateDetails
}

// OrderListStatus - состояние кеша заказов.
type OrderListStatus struct {
	Loaded          bool
	FetchedAt       time.Time
	LastFetchFailed bool
	Total           int
}
