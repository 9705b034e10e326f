package entities

import "strings"

type BuyFlowType string

const (
	BuyFlowMadCT       BuyFlowType = "MAD_CT"
	BuyFlowMultisig    BuyFlowType = "MULTISIG"
	BuyFlowUnsupported BuyFlowType = "UNSUPPORTED"
)

// ParseBuyFlowType принимает escrow type в том виде, как его отдает демон.
// Все нераспознанное превращается в UNSUPPORTED.
func ParseBuyFlowType(raw string) BuyFlowType {
	switch BuyFlowType(strings.ToUpper(strings.TrimSpace(raw))) {
	case BuyFlowMadCT:
		return BuyFlowMadCT
	case BuyFlowMultisig:
		return BuyFlowMultisig
	default:
		return BuyFlowUnsupported
	}
}

func (t BuyFlowType) String() string {
	return string(t)
}

// BuyFlowOrderType - состояние заказа. Значение хранится как есть, без нормализации:
// у пира может быть более новая версия с состояниями, которых мы не знаем.
type BuyFlowOrderType string

const (
	OrderStateBidded          BuyFlowOrderType = "BIDDED"
	OrderStateAccepted        BuyFlowOrderType = "ACCEPTED"
	OrderStateEscrowLocked    BuyFlowOrderType = "ESCROW_LOCKED"
	OrderStateEscrowCompleted BuyFlowOrderType = "ESCROW_COMPLETED"
	OrderStateShipped         BuyFlowOrderType = "SHIPPED"
	OrderStateComplete        BuyFlowOrderType = "COMPLETE"
	OrderStateRejected        BuyFlowOrderType = "REJECTED"
	OrderStateCancelled       BuyFlowOrderType = "CANCELLED"
	OrderStateUnknown         BuyFlowOrderType = "UNKNOWN"
)

func (t BuyFlowOrderType) String() string {
	return string(t)
}

type OrderUserType string

const (
	UserBuyer  OrderUserType = "BUYER"
	UserSeller OrderUserType = "SELLER"
)

func (t OrderUserType) String() string {
	return string(t)
}

func (t OrderUserType) IsValid() bool {
	return t == UserBuyer || t == UserSeller
}

type StateStatusClass string

const (
	StatusClassNone         StateStatusClass = ""
	StatusClassPrimary      StateStatusClass = "primary"
	StatusClassSecondary    StateStatusClass = "secondary"
	StatusClassTertiary     StateStatusClass = "tertiary"
	StatusClassAlert        StateStatusClass = "alert"
	StatusClassWarning      StateStatusClass = "warning"
	StatusClassWarningOther StateStatusClass = "warning-alt"
	StatusClassInactive     StateStatusClass = "inactive"
)

func (c StateStatusClass) String() string {
	return string(c)
}

type StateInfo struct {
	Buyer  string
	Seller string
}

func (i StateInfo) For(role OrderUserType) string {
	if role == UserSeller {
		return i.Seller
	}
	return i.Buyer
}

type BuyFlowState struct {
	Buyflow     BuyFlowType
	StateID     BuyFlowOrderType
	Label       string
	FilterLabel string
	Order       int
	StateInfo   StateInfo
	StatusClass StateStatusClass
	Terminal    bool
}

type BuyflowActionType string

const (
	ActionPrimary          BuyflowActionType = "PRIMARY"
	ActionAlternative      BuyflowActionType = "ALTERNATIVE"
	ActionPlaceholderLabel BuyflowActionType = "PLACEHOLDER_LABEL"
)

func (t BuyflowActionType) String() string {
	return string(t)
}

func (t BuyflowActionType) IsValid() bool {
	switch t {
	case ActionPrimary, ActionAlternative, ActionPlaceholderLabel:
		return true
	default:
		return false
	}
}

type ActionColour string

const (
	ColourPrimary ActionColour = "primary"
	ColourWarn    ActionColour = "warn"
)

type ActionDetails struct {
	Label   string
	Tooltip string
	Colour  ActionColour
	Icon    string
}

// TransitionKind - имя исполняемой операции перехода. Для placeholder пусто.
type TransitionKind string

const (
	TransitionNone           TransitionKind = ""
	TransitionAcceptBid      TransitionKind = "accept_bid"
	TransitionRejectBid      TransitionKind = "reject_bid"
	TransitionCancelBid      TransitionKind = "cancel_bid"
	TransitionLockEscrow     TransitionKind = "lock_escrow"
	TransitionCompleteEscrow TransitionKind = "complete_escrow"
	TransitionShipItem       TransitionKind = "ship_item"
	TransitionReleaseEscrow  TransitionKind = "release_escrow"
)

func (k TransitionKind) String() string {
	return string(k)
}

type BuyflowAction struct {
	FromState  BuyFlowOrderType
	ToState    *BuyFlowOrderType
	User       OrderUserType
	ActionType BuyflowActionType
	Details    ActionDetails
	Transition TransitionKind
}

type BuyflowActions struct {
	Primary          []BuyflowAction
	Alternative      []BuyflowAction
	PlaceholderLabel []BuyflowAction
}

type BuyflowStateDetails struct {
	State   BuyFlowState
	Actions BuyflowActions
}

type ActionTransitionParams struct {
	DeliveryEmail string
	DeliveryPhone string
	Memo          string
}

// TransitionResult - то, что удалось разобрать из ответа демона на команду перехода.
type TransitionResult struct {
	MessageID string
	TxID      string
}
