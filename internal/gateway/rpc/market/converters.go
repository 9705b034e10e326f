package market

import (
	"errors"
	"strings"
	"time"

	"market/internal/entities"
)

const hashPrefixLen = 8

// ключи BidDatas, которые мы понимаем
const (
	bidDataDeliveryEmail   = "delivery.email"
	bidDataDeliveryPhone   = "delivery.phone"
	bidDataEscrowMemo      = "escrow.memo"
	bidDataShippingMemo    = "shipping.memo"
	bidDataReleaseMemo     = "release.memo"
	bidDataEscrowTxn       = "escrow.txid"
	bidDataReleaseTxn      = "release.txid"
	bidDataRejectionReason = "reject.reason"
)

var (
	errMissingBidID     = errors.New("missing bid id")
	errMissingOrderItem = errors.New("missing order item")
	errMissingListing   = errors.New("missing listing")
	errMissingParties   = errors.New("missing buyer or seller")
)

// toDomainList конвертирует то, что смогло сконвертироваться. Отброшенные записи
// возвращаются отдельно, чтобы вызывающий мог их посчитать.
func toDomainList(records []bidRecord) ([]entities.OrderItem, []error) {
	items := make([]entities.OrderItem, 0, len(records))
	var skipped []error

	for i := range records {
		item, err := toDomain(&records[i])
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		items = append(items, *item)
	}
	return items, skipped
}

func toDomain(rec *bidRecord) (*entities.OrderItem, error) {
	if rec == nil || rec.ID == nil {
		return nil, errMissingBidID
	}
	if rec.OrderItem == nil || rec.OrderItem.ID == nil || rec.OrderItem.Order == nil {
		return nil, errMissingOrderItem
	}
	if rec.ListingItem == nil {
		return nil, errMissingListing
	}
	if rec.Bidder == "" || rec.ListingItem.Seller == "" {
		return nil, errMissingParties
	}

	baseBidID := *rec.ID
	if rec.ParentBidID != nil {
		baseBidID = *rec.ParentBidID
	}

	created := fromMillis(rec.CreatedAt)
	if rec.CreatedAt == 0 {
		created = fromMillis(rec.GeneratedAt)
	}
	updated := fromMillis(rec.UpdatedAt)
	if rec.UpdatedAt == 0 {
		updated = created
	}

	item := &entities.OrderItem{
		OrderID:       rec.OrderItem.Order.ID,
		OrderItemID:   *rec.OrderItem.ID,
		BaseBidID:     baseBidID,
		OrderHash:     rec.OrderItem.Order.Hash,
		MarketKey:     rec.ListingItem.Market,
		Buyflow:       toBuyflow(rec.ListingItem.PaymentInformation),
		Status:        toStatus(rec.OrderItem.Status),
		BuyerAddress:  rec.Bidder,
		SellerAddress: rec.ListingItem.Seller,
		Created:       created,
		Updated:       updated,
		Listing:       toListing(rec.ListingItem),
		Pricing:       toPricing(rec.ListingItem.PaymentInformation),
	}

	if rec.Shipping != nil {
		item.ShippingDetails = &entities.ShippingDetails{
			Name:         strings.TrimSpace(rec.Shipping.FirstName + " " + rec.Shipping.LastName),
			AddressLine1: rec.Shipping.AddressLine1,
			AddressLine2: rec.Shipping.AddressLine2,
			City:         rec.Shipping.City,
			State:        rec.Shipping.State,
			Code:         rec.Shipping.ZipCode,
			Country:      rec.Shipping.Country,
		}
	}

	applyBidDatas(item, rec.BidDatas)
	return item, nil
}

func toBuyflow(payment *paymentRecord) entities.BuyFlowType {
	if payment == nil || payment.Escrow == nil {
		return entities.BuyFlowUnsupported
	}
	return entities.ParseBuyFlowType(payment.Escrow.Type)
}

func toStatus(raw string) entities.BuyFlowOrderType {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return entities.OrderStateUnknown
	}
	return entities.BuyFlowOrderType(strings.ToUpper(raw))
}

func toListing(rec *listingRecord) *entities.ListingSummary {
	listing := &entities.ListingSummary{
		ID:   rec.ID,
		Hash: rec.Hash,
	}
	if len(rec.Hash) > hashPrefixLen {
		listing.HashPrefix = rec.Hash[:hashPrefixLen]
	} else {
		listing.HashPrefix = rec.Hash
	}

	if info := rec.ItemInformation; info != nil {
		listing.Title = info.Title
		for i, img := range info.Images {
			if i == 0 || img.Featured {
				listing.Image = img.Data
			}
			if img.Featured {
				break
			}
		}
	}
	return listing
}

func toPricing(payment *paymentRecord) *entities.Pricing {
	if payment == nil || payment.ItemPrice == nil {
		return nil
	}

	base := payment.ItemPrice.BasePrice
	var shipping int64
	if payment.ItemPrice.ShippingPrice != nil {
		shipping = payment.ItemPrice.ShippingPrice.Domestic
	}
	subTotal := base + shipping

	var escrow int64
	if payment.Escrow != nil && payment.Escrow.Ratio != nil {
		escrow = subTotal * payment.Escrow.Ratio.Buyer / 100
	}

	return &entities.Pricing{
		BasePrice:     entities.PriceItem{Amount: base},
		ShippingPrice: entities.PriceItem{Amount: shipping},
		SubTotal:      entities.PriceItem{Amount: subTotal},
		EscrowAmount:  entities.PriceItem{Amount: escrow},
		TotalRequired: entities.PriceItem{Amount: subTotal + escrow},
	}
}

func applyBidDatas(item *entities.OrderItem, datas []bidDataRecord) {
	var contact entities.ContactDetails
	var extra entities.ExtraDetails

	for _, d := range datas {
		switch d.Key {
		case bidDataDeliveryEmail:
			contact.Email = d.Value
		case bidDataDeliveryPhone:
			contact.Phone = d.Value
		case bidDataEscrowMemo:
			extra.EscrowMemo = d.Value
		case bidDataShippingMemo:
			extra.ShippingMemo = d.Value
		case bidDataReleaseMemo:
			extra.ReleaseMemo = d.Value
		case bidDataEscrowTxn:
			extra.EscrowTxn = d.Value
		case bidDataReleaseTxn:
			extra.ReleaseTxn = d.Value
		case bidDataRejectionReason:
			extra.RejectionReason = d.Value
		}
	}

	if contact != (entities.ContactDetails{}) {
		item.ContactDetails = &contact
	}
	if extra != (entities.ExtraDetails{}) {
		item.ExtraDetails = &extra
	}
}

func toTransitionResult(resp *transitionResponse) *entities.TransitionResult {
	if resp == nil {
		return &entities.TransitionResult{}
	}
	return &entities.TransitionResult{
		MessageID: resp.MsgID,
		TxID:      resp.TxID,
	}
}

func fromMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
