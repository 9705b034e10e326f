package buyflow

import "market/internal/entities"

func to(state entities.BuyFlowOrderType) *entities.BuyFlowOrderType {
	return &state
}

// DefaultDeclarations - buyflow для двух поддерживаемых типов escrow.
func DefaultDeclarations() []Declaration {
	return []Declaration{madCTDeclaration(), multisigDeclaration()}
}

func madCTDeclaration() Declaration {
	return Declaration{
		Buyflow: entities.BuyFlowMadCT,
		States: []entities.BuyFlowState{
			{
				StateID:     entities.OrderStateBidded,
				Label:       "Bid placed",
				FilterLabel: "Bids",
				Order:       1,
				StateInfo: entities.StateInfo{
					Buyer:  "Waiting for the seller to accept your bid",
					Seller: "A buyer is waiting for you to accept or reject the bid",
				},
				StatusClass: entities.StatusClassPrimary,
			},
			{
				StateID:     entities.OrderStateEscrowLocked,
				Label:       "Escrow locked",
				FilterLabel: "Escrow",
				Order:       2,
				StateInfo: entities.StateInfo{
					Buyer:  "Funds are locked in escrow, waiting for the seller to ship",
					Seller: "Funds are locked in escrow, ship the item to the buyer",
				},
				StatusClass: entities.StatusClassSecondary,
			},
			{
				StateID:     entities.OrderStateShipped,
				Label:       "Shipped",
				FilterLabel: "Shipped",
				Order:       3,
				StateInfo: entities.StateInfo{
					Buyer:  "The item has been shipped, confirm delivery once it arrives",
					Seller: "Waiting for the buyer to confirm delivery",
				},
				StatusClass: entities.StatusClassTertiary,
			},
			{
				StateID:     entities.OrderStateComplete,
				Label:       "Complete",
				FilterLabel: "Complete",
				Order:       4,
				StateInfo: entities.StateInfo{
					Buyer:  "Order complete, escrow released",
					Seller: "Order complete, escrow released",
				},
				StatusClass: entities.StatusClassInactive,
				Terminal:    true,
			},
			{
				StateID:     entities.OrderStateRejected,
				Label:       "Rejected",
				FilterLabel: "Rejected",
				Order:       5,
				StateInfo: entities.StateInfo{
					Buyer:  "The seller rejected your bid",
					Seller: "You rejected this bid",
				},
				StatusClass: entities.StatusClassAlert,
				Terminal:    true,
			},
			{
				StateID:     entities.OrderStateCancelled,
				Label:       "Cancelled",
				FilterLabel: "Cancelled",
				Order:       6,
				StateInfo: entities.StateInfo{
					Buyer:  "You cancelled this bid",
					Seller: "The buyer cancelled the bid",
				},
				StatusClass: entities.StatusClassWarning,
				Terminal:    true,
			},
		},
		Actions: []entities.BuyflowAction{
			{
				FromState:  entities.OrderStateBidded,
				ToState:    to(entities.OrderStateEscrowLocked),
				User:       entities.UserSeller,
				ActionType: entities.ActionPrimary,
				Details: entities.ActionDetails{
					Label:   "Accept bid & escrow",
					Tooltip: "Accept the bid and lock your part of the escrow",
					Colour:  entities.ColourPrimary,
					Icon:    "check",
				},
				Transition: entities.TransitionAcceptBid,
			},
			{
				FromState:  entities.OrderStateBidded,
				ToState:    to(entities.OrderStateRejected),
				User:       entities.UserSeller,
				ActionType: entities.ActionAlternative,
				Details: entities.ActionDetails{
					Label:   "Reject bid",
					Tooltip: "Reject the bid and cancel the order",
					Colour:  entities.ColourWarn,
					Icon:    "close",
				},
				Transition: entities.TransitionRejectBid,
			},
			{
				FromState:  entities.OrderStateBidded,
				ToState:    to(entities.OrderStateCancelled),
				User:       entities.UserBuyer,
				ActionType: entities.ActionAlternative,
				Details: entities.ActionDetails{
					Label:   "Cancel bid",
					Tooltip: "Withdraw the bid before the seller accepts it",
					Colour:  entities.ColourWarn,
					Icon:    "close",
				},
				Transition: entities.TransitionCancelBid,
			},
			waitingFor(entities.OrderStateBidded, entities.UserBuyer, "Waiting for seller"),
			{
				FromState:  entities.OrderStateEscrowLocked,
				ToState:    to(entities.OrderStateShipped),
				User:       entities.UserSeller,
				ActionType: entities.ActionPrimary,
				Details: entities.ActionDetails{
					Label:   "Mark as shipped",
					Tooltip: "Confirm that the item has been sent to the buyer",
					Colour:  entities.ColourPrimary,
					Icon:    "local_shipping",
				},
				Transition: entities.TransitionShipItem,
			},
			waitingFor(entities.OrderStateEscrowLocked, entities.UserBuyer, "Waiting for shipping"),
			{
				FromState:  entities.OrderStateShipped,
				ToState:    to(entities.OrderStateComplete),
				User:       entities.UserBuyer,
				ActionType: entities.ActionPrimary,
				Details: entities.ActionDetails{
					Label:   "Mark as delivered",
					Tooltip: "Confirm delivery and release the escrow to the seller",
					Colour:  entities.ColourPrimary,
					Icon:    "done_all",
				},
				Transition: entities.TransitionReleaseEscrow,
			},
			waitingFor(entities.OrderStateShipped, entities.UserSeller, "Waiting for delivery confirmation"),
		},
	}
}

func multisigDeclaration() Declaration {
	return Declaration{
		Buyflow: entities.BuyFlowMultisig,
		States: []entities.BuyFlowState{
			{
				StateID:     entities.OrderStateBidded,
				Label:       "Bid placed",
				FilterLabel: "Bids",
				Order:       1,
				StateInfo: entities.StateInfo{
					Buyer:  "Waiting for the seller to accept your bid",
					Seller: "A buyer is waiting for you to accept or reject the bid",
				},
				StatusClass: entities.StatusClassPrimary,
			},
			{
				StateID:     entities.OrderStateAccepted,
				Label:       "Accepted",
				FilterLabel: "Accepted",
				Order:       2,
				StateInfo: entities.StateInfo{
					Buyer:  "The seller accepted your bid, lock the escrow to continue",
					Seller: "Waiting for the buyer to lock the escrow",
				},
				StatusClass: entities.StatusClassPrimary,
			},
			{
				StateID:     entities.OrderStateEscrowLocked,
				Label:       "Escrow locked",
				FilterLabel: "Escrow",
				Order:       3,
				StateInfo: entities.StateInfo{
					Buyer:  "Waiting for the seller to complete the escrow",
					Seller: "The buyer locked the escrow, complete it to continue",
				},
				StatusClass: entities.StatusClassSecondary,
			},
			{
				StateID:     entities.OrderStateEscrowCompleted,
				Label:       "Escrow completed",
				FilterLabel: "Escrow",
				Order:       4,
				StateInfo: entities.StateInfo{
					Buyer:  "Escrow completed, waiting for the seller to ship",
					Seller: "Escrow completed, ship the item to the buyer",
				},
				StatusClass: entities.StatusClassSecondary,
			},
			{
				StateID:     entities.OrderStateShipped,
				Label:       "Shipped",
				FilterLabel: "Shipped",
				Order:       5,
				StateInfo: entities.StateInfo{
					Buyer:  "The item has been shipped, confirm delivery once it arrives",
					Seller: "Waiting for the buyer to confirm delivery",
				},
				StatusClass: entities.StatusClassTertiary,
			},
			{
				StateID:     entities.OrderStateComplete,
				Label:       "Complete",
				FilterLabel: "Complete",
				Order:       6,
				StateInfo: entities.StateInfo{
					Buyer:  "Order complete, escrow released",
					Seller: "Order complete, escrow released",
				},
				StatusClass: entities.StatusClassInactive,
				Terminal:    true,
			},
			{
				StateID:     entities.OrderStateRejected,
				Label:       "Rejected",
				FilterLabel: "Rejected",
				Order:       7,
				StateInfo: entities.StateInfo{
					Buyer:  "The seller rejected your bid",
					Seller: "You rejected this bid",
				},
				StatusClass: entities.StatusClassAlert,
				Terminal:    true,
			},
			{
				StateID:     entities.OrderStateCancelled,
				Label:       "Cancelled",
				FilterLabel: "Cancelled",
				Order:       8,
				StateInfo: entities.StateInfo{
					Buyer:  "You cancelled this bid",
					Seller: "The buyer cancelled the bid",
				},
				StatusClass: entities.StatusClassWarningOther,
				Terminal:    true,
			},
		},
		Actions: []entities.BuyflowAction{
			{
				FromState:  entities.OrderStateBidded,
				ToState:    to(entities.OrderStateAccepted),
				User:       entities.UserSeller,
				ActionType: entities.ActionPrimary,
				Details: entities.ActionDetails{
					Label:   "Accept bid",
					Tooltip: "Accept the bid, the buyer locks the escrow next",
					Colour:  entities.ColourPrimary,
					Icon:    "check",
				},
				Transition: entities.TransitionAcceptBid,
			},
			{
				FromState:  entities.OrderStateBidded,
				ToState:    to(entities.OrderStateRejected),
				User:       entities.UserSeller,
				ActionType: entities.ActionAlternative,
				Details: entities.ActionDetails{
					Label:   "Reject bid",
					Tooltip: "Reject the bid and cancel the order",
					Colour:  entities.ColourWarn,
					Icon:    "close",
				},
				Transition: entities.TransitionRejectBid,
			},
			{
				FromState:  entities.OrderStateBidded,
				ToState:    to(entities.OrderStateCancelled),
				User:       entities.UserBuyer,
				ActionType: entities.ActionAlternative,
				Details: entities.ActionDetails{
					Label:   "Cancel bid",
					Tooltip: "Withdraw the bid before the seller accepts it",
					Colour:  entities.ColourWarn,
					Icon:    "close",
				},
				Transition: entities.TransitionCancelBid,
			},
			waitingFor(entities.OrderStateBidded, entities.UserBuyer, "Waiting for seller"),
			{
				FromState:  entities.OrderStateAccepted,
				ToState:    to(entities.OrderStateEscrowLocked),
				User:       entities.UserBuyer,
				ActionType: entities.ActionPrimary,
				Details: entities.ActionDetails{
					Label:   "Make payment",
					Tooltip: "Lock the payment and your escrow deposit",
					Colour:  entities.ColourPrimary,
					Icon:    "lock",
				},
				Transition: entities.TransitionLockEscrow,
			},
			{
				FromState:  entities.OrderStateAccepted,
				ToState:    to(entities.OrderStateCancelled),
				User:       entities.UserBuyer,
				ActionType: entities.ActionAlternative,
				Details: entities.ActionDetails{
					Label:   "Cancel order",
					Tooltip: "Cancel the order before locking the escrow",
					Colour:  entities.ColourWarn,
					Icon:    "close",
				},
				Transition: entities.TransitionCancelBid,
			},
			waitingFor(entities.OrderStateAccepted, entities.UserSeller, "Waiting for payment"),
			{
				FromState:  entities.OrderStateEscrowLocked,
				ToState:    to(entities.OrderStateEscrowCompleted),
				User:       entities.UserSeller,
				ActionType: entities.ActionPrimary,
				Details: entities.ActionDetails{
					Label:   "Complete escrow",
					Tooltip: "Sign the escrow transaction with your key",
					Colour:  entities.ColourPrimary,
					Icon:    "lock",
				},
				Transition: entities.TransitionCompleteEscrow,
			},
			waitingFor(entities.OrderStateEscrowLocked, entities.UserBuyer, "Waiting for seller"),
			{
				FromState:  entities.OrderStateEscrowCompleted,
				ToState:    to(entities.OrderStateShipped),
				User:       entities.UserSeller,
				ActionType: entities.ActionPrimary,
				Details: entities.ActionDetails{
					Label:   "Mark as shipped",
					Tooltip: "Confirm that the item has been sent to the buyer",
					Colour:  entities.ColourPrimary,
					Icon:    "local_shipping",
				},
				Transition: entities.TransitionShipItem,
			},
			waitingFor(entities.OrderStateEscrowCompleted, entities.UserBuyer, "Waiting for shipping"),
			{
				FromState:  entities.OrderStateShipped,
				ToState:    to(entities.OrderStateComplete),
				User:       entities.UserBuyer,
				ActionType: entities.ActionPrimary,
				Details: entities.ActionDetails{
					Label:   "Mark as delivered",
					Tooltip: "Confirm delivery and release the escrow to the seller",
					Colour:  entities.ColourPrimary,
					Icon:    "done_all",
				},
				Transition: entities.TransitionReleaseEscrow,
			},
			waitingFor(entities.OrderStateShipped, entities.UserSeller, "Waiting for delivery confirmation"),
		},
	}
}

func waitingFor(state entities.BuyFlowOrderType, user entities.OrderUserType, label string) entities.BuyflowAction {
	return entities.BuyflowAction{
		FromState:  state,
		User:       user,
		ActionType: entities.ActionPlaceholderLabel,
		Details: entities.ActionDetails{
			Label:  label,
			Colour: entities.ColourPrimary,
			Icon:   "hourglass_empty",
		},
	}
}
