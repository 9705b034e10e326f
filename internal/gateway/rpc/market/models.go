package market

// Ответы mp в том виде, в каком их отдает демон. Все поля опциональны:
// проверка формы делается в converters.go.

type bidRecord struct {
	ID          *int64          `json:"id"`
	Type        string          `json:"type"`
	Bidder      string          `json:"bidder"`
	Hash        string          `json:"hash"`
	ParentBidID *int64          `json:"parentBidId"`
	GeneratedAt int64           `json:"generatedAt"`
	CreatedAt   int64           `json:"createdAt"`
	UpdatedAt   int64           `json:"updatedAt"`
	ListingItem *listingRecord  `json:"ListingItem"`
	OrderItem   *orderItemRec   `json:"OrderItem"`
	Shipping    *shippingRecord `json:"ShippingAddress"`
	BidDatas    []bidDataRecord `json:"BidDatas"`
}

type listingRecord struct {
	ID                 int64                  `json:"id"`
	Hash               string                 `json:"hash"`
	Seller             string                 `json:"seller"`
	Market             string                 `json:"market"`
	ItemInformation    *itemInformationRecord `json:"ItemInformation"`
	PaymentInformation *paymentRecord         `json:"PaymentInformation"`
}

type itemInformationRecord struct {
	Title  string        `json:"title"`
	Images []imageRecord `json:"Images"`
}

type imageRecord struct {
	Featured bool   `json:"featured"`
	Data     string `json:"data"`
}

type paymentRecord struct {
	ItemPrice *itemPriceRecord `json:"ItemPrice"`
	Escrow    *escrowRecord    `json:"Escrow"`
}

type itemPriceRecord struct {
	BasePrice     int64                `json:"basePrice"`
	ShippingPrice *shippingPriceRecord `json:"ShippingPrice"`
}

type shippingPriceRecord struct {
	Domestic      int64 `json:"domestic"`
	International int64 `json:"international"`
}

type escrowRecord struct {
	Type  string             `json:"type"`
	Ratio *escrowRatioRecord `json:"Ratio"`
}

type escrowRatioRecord struct {
	Buyer  int64 `json:"buyer"`
	Seller int64 `json:"seller"`
}

type orderItemRec struct {
	ID     *int64       `json:"id"`
	Status string       `json:"status"`
	Order  *orderRecord `json:"Order"`
}

type orderRecord struct {
	ID   int64  `json:"id"`
	Hash string `json:"hash"`
}

type shippingRecord struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
}

type bidDataRecord struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type transitionResponse struct {
	Result string `json:"result"`
	MsgID  string `json:"msgid"`
	TxID   string `json:"txid"`
}

type contactParams struct {
	DeliveryEmail string `json:"deliveryEmail,omitempty"`
	DeliveryPhone string `json:"deliveryPhone,omitempty"`
}
