package buyflow

import (
	"context"
	"fmt"
	"sort"
	"time"

	"market/internal/entities"
)

// Declaration описывает один buyflow: упорядоченный список состояний и ребра между ними.
type Declaration struct {
	Buyflow entities.BuyFlowType
	States  []entities.BuyFlowState
	Actions []entities.BuyflowAction
}

type boundAction struct {
	action     entities.BuyflowAction
	transition TransitionFn
}

type flow struct {
	states  []entities.BuyFlowState
	byID    map[entities.BuyFlowOrderType]entities.BuyFlowState
	actions map[entities.BuyFlowOrderType][]boundAction
}

// Registry - таблица (buyflow, state) -> действия. Не меняется после New,
// поэтому безопасна для конкурентного чтения без блокировок.
// Это именно lookup-таблица, а не машина состояний на каждый заказ:
// законность перехода в итоге решает демон.
type Registry struct {
	flows map[entities.BuyFlowType]*flow
	now   func() time.Time
}

func New(factory TransitionFactory, declarations ...Declaration) (*Registry, error) {
	r := &Registry{
		flows: make(map[entities.BuyFlowType]*flow, len(declarations)),
		now:   time.Now,
	}

	for _, decl := range declarations {
		if _, exists := r.flows[decl.Buyflow]; exists {
			return nil, fmt.Errorf("%w: buyflow %s declared twice", ErrInvalidDeclaration, decl.Buyflow)
		}

		f, err := buildFlow(factory, decl)
		if err != nil {
			return nil, err
		}
		r.flows[decl.Buyflow] = f
	}

	return r, nil
}

// OrderedStateList возвращает копию состояний в порядке отображения.
// Для неизвестного buyflow - пустой список, это не ошибка.
func (r *Registry) OrderedStateList(buyflow entities.BuyFlowType) []entities.BuyFlowState {
	f, ok := r.flows[buyflow]
	if !ok {
		return []entities.BuyFlowState{}
	}

	states := make([]entities.BuyFlowState, len(f.states))
	copy(states, f.states)
	return states
}

// StateDetails никогда не падает: для незнакомого состояния отдается синтетический
// дескриптор UNKNOWN с пустыми корзинами действий.
func (r *Registry) StateDetails(
	buyflow entities.BuyFlowType,
	stateID entities.BuyFlowOrderType,
	role entities.OrderUserType,
) entities.BuyflowStateDetails {
	details := entities.BuyflowStateDetails{
		State: UnknownState(buyflow),
		Actions: entities.BuyflowActions{
			Primary:          []entities.BuyflowAction{},
			Alternative:      []entities.BuyflowAction{},
			PlaceholderLabel: []entities.BuyflowAction{},
		},
	}

	f, ok := r.flows[buyflow]
	if !ok {
		return details
	}
	state, ok := f.byID[stateID]
	if !ok {
		return details
	}
	details.State = state

	for _, bound := range f.actions[stateID] {
		if bound.action.User != role {
			continue
		}

		action := cloneAction(bound.action)
		switch action.ActionType {
		case entities.ActionPrimary:
			details.Actions.Primary = append(details.Actions.Primary, action)
		case entities.ActionAlternative:
			details.Actions.Alternative = append(details.Actions.Alternative, action)
		case entities.ActionPlaceholderLabel:
			details.Actions.PlaceholderLabel = append(details.Actions.PlaceholderLabel, action)
		}
	}

	return details
}

// ActionOrderItem выполняет переход заказа в toState от имени role.
// Если подходящего действия нет, удаленный вызов не делается.
// Ретраев здесь нет: они живут на уровне RPC.
func (r *Registry) ActionOrderItem(
	ctx context.Context,
	item entities.OrderItem,
	toState entities.BuyFlowOrderType,
	role entities.OrderUserType,
	params entities.ActionTransitionParams,
) (*entities.OrderItem, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	bound, ok := r.findAction(item.Buyflow, item.Status, role, toState)
	if !ok {
		return nil, fmt.Errorf("%w: %s %s -> %s as %s",
			ErrIllegalTransition, item.Buyflow, item.Status, toState, role)
	}

	result, err := bound.transition(ctx, item, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %s on order item %d: %w",
			ErrTransitionFailed, bound.action.Transition, item.OrderItemID, err)
	}

	updated := applyTransition(item, bound.action, params, result, r.now())
	return &updated, nil
}

func (r *Registry) findAction(
	buyflow entities.BuyFlowType,
	from entities.BuyFlowOrderType,
	role entities.OrderUserType,
	to entities.BuyFlowOrderType,
) (boundAction, bool) {
	f, ok := r.flows[buyflow]
	if !ok {
		return boundAction{}, false
	}

	for _, bound := range f.actions[from] {
		a := bound.action
		if a.User != role || a.ActionType == entities.ActionPlaceholderLabel || a.ToState == nil {
			continue
		}
		if *a.ToState == to {
			return bound, true
		}
	}
	return boundAction{}, false
}

// UnknownState - дескриптор для состояния, которого нет в таблице.
func UnknownState(buyflow entities.BuyFlowType) entities.BuyFlowState {
	return entities.BuyFlowState{
		Buyflow:     buyflow,
		StateID:     entities.OrderStateUnknown,
		Label:       "Unknown",
		FilterLabel: "Unknown",
		Order:       0,
		StateInfo: entities.StateInfo{
			Buyer:  "The order is in a state this client does not recognise",
			Seller: "The order is in a state this client does not recognise",
		},
		StatusClass: entities.StatusClassInactive,
	}
}

func applyTransition(
	item entities.OrderItem,
	action entities.BuyflowAction,
	params entities.ActionTransitionParams,
	result *entities.TransitionResult,
	now time.Time,
) entities.OrderItem {
	updated := item.Clone()
	updated.Status = *action.ToState
	updated.Updated = now

	if result == nil {
		result = &entities.TransitionResult{}
	}

	if params.DeliveryEmail != "" || params.DeliveryPhone != "" {
		if updated.ContactDetails == nil {
			updated.ContactDetails = &entities.ContactDetails{}
		}
		if params.DeliveryEmail != "" {
			updated.ContactDetails.Email = params.DeliveryEmail
		}
		if params.DeliveryPhone != "" {
			updated.ContactDetails.Phone = params.DeliveryPhone
		}
	}

	extra := updated.ExtraDetails
	if extra == nil {
		extra = &entities.ExtraDetails{}
	}

	switch action.Transition {
	case entities.TransitionAcceptBid, entities.TransitionCompleteEscrow:
		if result.TxID != "" {
			extra.EscrowTxn = result.TxID
		}
	case entities.TransitionLockEscrow:
		if params.Memo != "" {
			extra.EscrowMemo = params.Memo
		}
		if result.TxID != "" {
			extra.EscrowTxn = result.TxID
		}
	case entities.TransitionShipItem:
		if params.Memo != "" {
			extra.ShippingMemo = params.Memo
		}
	case entities.TransitionReleaseEscrow:
		if params.Memo != "" {
			extra.ReleaseMemo = params.Memo
		}
		if result.TxID != "" {
			extra.ReleaseTxn = result.TxID
		}
	case entities.TransitionRejectBid:
		if params.Memo != "" {
			extra.RejectionReason = params.Memo
		}
	}

	if *extra != (entities.ExtraDetails{}) {
		updated.ExtraDetails = extra
	}
	return updated
}

func cloneAction(a entities.BuyflowAction) entities.BuyflowAction {
	if a.ToState != nil {
		to := *a.ToState
		a.ToState = &to
	}
	return a
}

func sortStates(states []entities.BuyFlowState) {
	sort.SliceStable(states, func(i, j int) bool {
		return states[i].Order < states[j].Order
	})
}
