package order_action_requested

type requestedParams struct {
	DeliveryEmail string `json:"delivery_email" validate:"omitempty,email"`
	DeliveryPhone string `json:"delivery_phone" validate:"omitempty,max=32"`
	Memo          string `json:"memo" validate:"omitempty,max=500"`
}

type requestedEvent struct {
	OrderItemID int64           `json:"order_item_id" validate:"required,gt=0"`
	ToState     string          `json:"to_state" validate:"required,order_state"`
	Role        string          `json:"role" validate:"required,oneof=BUYER SELLER"`
	Params      requestedParams `json:"params"`
}
