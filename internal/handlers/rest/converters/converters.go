package converters

import (
	"github.com/AlekSi/pointer"
	"market/internal/entities"
	"market/internal/generated/dto"
)

func BuyflowState(state entities.BuyFlowState) dto.BuyflowState {
	return dto.BuyflowState{
		Buyflow:     state.Buyflow.String(),
		StateID:     state.StateID.String(),
		Label:       state.Label,
		FilterLabel: state.FilterLabel,
		Order:       state.Order,
		StateInfo: dto.StateInfo{
			Buyer:  state.StateInfo.Buyer,
			Seller: state.StateInfo.Seller,
		},
		StatusClass: string(state.StatusClass),
		Terminal:    state.Terminal,
	}
}

func BuyflowStates(states []entities.BuyFlowState) []dto.BuyflowState {
	result := make([]dto.BuyflowState, 0, len(states))
	for _, state := range states {
		result = append(result, BuyflowState(state))
	}
	return result
}

func BuyflowStateDetails(details entities.BuyflowStateDetails) dto.BuyflowStateDetails {
	return dto.BuyflowStateDetails{
		State: BuyflowState(details.State),
		Actions: dto.BuyflowActions{
			PRIMARY:          buyflowActions(details.Actions.Primary),
			ALTERNATIVE:      buyflowActions(details.Actions.Alternative),
			PLACEHOLDERLABEL: buyflowActions(details.Actions.PlaceholderLabel),
		},
	}
}

// buyflowActions всегда возвращает не nil, чтобы в JSON был [] вместо null.
func buyflowActions(actions []entities.BuyflowAction) []dto.BuyflowAction {
	result := make([]dto.BuyflowAction, 0, len(actions))
	for _, action := range actions {
		converted := dto.BuyflowAction{
			FromState:  action.FromState.String(),
			User:       action.User.String(),
			ActionType: string(action.ActionType),
			Details: dto.ActionDetails{
				Label:   action.Details.Label,
				Tooltip: action.Details.Tooltip,
				Colour:  string(action.Details.Colour),
				Icon:    action.Details.Icon,
			},
		}
		if action.ToState != nil {
			converted.ToState = pointer.To(action.ToState.String())
		}
		result = append(result, converted)
	}
	return result
}

func OrderItem(item entities.OrderItem) dto.OrderItem {
	result := dto.OrderItem{
		OrderID:       item.OrderID,
		OrderItemID:   item.OrderItemID,
		BaseBidID:     item.BaseBidID,
		OrderHash:     item.OrderHash,
		MarketKey:     item.MarketKey,
		Buyflow:       item.Buyflow.String(),
		Status:        item.Status.String(),
		BuyerAddress:  item.BuyerAddress,
		SellerAddress: item.SellerAddress,
		Created:       item.Created,
		Updated:       item.Updated,
	}

	if item.Listing != nil {
		result.Listing = &dto.Listing{
			ID:         item.Listing.ID,
			Title:      item.Listing.Title,
			Image:      item.Listing.Image,
			Hash:       item.Listing.Hash,
			HashPrefix: item.Listing.HashPrefix,
		}
	}

	if item.Pricing != nil {
		result.Pricing = &dto.Pricing{
			BasePrice:     item.Pricing.BasePrice.Amount,
			ShippingPrice: item.Pricing.ShippingPrice.Amount,
			Subtotal:      item.Pricing.SubTotal.Amount,
			EscrowAmount:  item.Pricing.EscrowAmount.Amount,
			TotalRequired: item.Pricing.TotalRequired.Amount,
		}
	}

	if extra := item.ExtraDetails; extra != nil {
		if extra.EscrowTxn != "" {
			result.EscrowTxid = pointer.To(extra.EscrowTxn)
		}
		if extra.ReleaseTxn != "" {
			result.ReleaseTxid = pointer.To(extra.ReleaseTxn)
		}
		if extra.RejectionReason != "" {
			result.RejectionReason = pointer.To(extra.RejectionReason)
		}
	}

	return result
}

func OrderItemView(view entities.OrderItemView) dto.OrderItemView {
	return dto.OrderItemView{
		Item:         OrderItem(view.Item),
		Role:         view.Role.String(),
		CurrentState: BuyflowStateDetails(view.CurrentState),
	}
}

func OrderItemViews(views []entities.OrderItemView) []dto.OrderItemView {
	result := make([]dto.OrderItemView, 0, len(views))
	for _, view := range views {
		result = append(result, OrderItemView(view))
	}
	return result
}

func OrderListStatus(status entities.OrderListStatus) dto.OrderListStatus {
	result := dto.OrderListStatus{
		Loaded:          status.Loaded,
		LastFetchFailed: status.LastFetchFailed,
		Total:           status.Total,
	}
	if !status.FetchedAt.IsZero() {
		result.FetchedAt = pointer.To(status.FetchedAt)
	}
	return result
}

func OrderActionParams(params *dto.OrderActionParams) entities.ActionTransitionParams {
	if params == nil {
		return entities.ActionTransitionParams{}
	}
	return entities.ActionTransitionParams{
		DeliveryEmail: pointer.Get(params.DeliveryEmail),
		DeliveryPhone: pointer.Get(params.DeliveryPhone),
		Memo:          pointer.Get(params.Memo),
	}
}

func Setting(setting entities.Setting) dto.Setting {
	return dto.Setting{
		Path:        setting.Field.Path,
		Title:       setting.Field.Title,
		Description: setting.Field.Description,
		Type:        setting.Field.Type.String(),
		Default:     setting.Field.Default,
		Value:       setting.Value,
	}
}

func Settings(settings []entities.Setting) []dto.Setting {
	result := make([]dto.Setting, 0, len(settings))
	for _, setting := range settings {
		result = append(result, Setting(setting))
	}
	return result
}
