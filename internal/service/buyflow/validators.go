package buyflow

import (
	"fmt"

	"market/internal/entities"
)

type primaryKey struct {
	from entities.BuyFlowOrderType
	user entities.OrderUserType
}

func buildFlow(factory TransitionFactory, decl Declaration) (*flow, error) {
	if decl.Buyflow == "" || decl.Buyflow == entities.BuyFlowUnsupported {
		return nil, fmt.Errorf("%w: buyflow %q cannot be declared", ErrInvalidDeclaration, decl.Buyflow)
	}
	if len(decl.States) == 0 {
		return nil, fmt.Errorf("%w: buyflow %s has no states", ErrInvalidDeclaration, decl.Buyflow)
	}

	f := &flow{
		states:  make([]entities.BuyFlowState, 0, len(decl.States)),
		byID:    make(map[entities.BuyFlowOrderType]entities.BuyFlowState, len(decl.States)),
		actions: make(map[entities.BuyFlowOrderType][]boundAction),
	}

	orders := make(map[int]entities.BuyFlowOrderType, len(decl.States))
	for _, state := range decl.States {
		if state.Buyflow == "" {
			state.Buyflow = decl.Buyflow
		}
		if state.Buyflow != decl.Buyflow {
			return nil, fmt.Errorf("%w: state %s belongs to %s, declared under %s",
				ErrInvalidDeclaration, state.StateID, state.Buyflow, decl.Buyflow)
		}
		if state.StateID == "" || state.StateID == entities.OrderStateUnknown {
			return nil, fmt.Errorf("%w: buyflow %s: state id %q is reserved",
				ErrInvalidDeclaration, decl.Buyflow, state.StateID)
		}
		if _, dup := f.byID[state.StateID]; dup {
			return nil, fmt.Errorf("%w: buyflow %s: state %s declared twice",
				ErrInvalidDeclaration, decl.Buyflow, state.StateID)
		}
		if other, dup := orders[state.Order]; dup {
			return nil, fmt.Errorf("%w: buyflow %s: states %s and %s share display order %d",
				ErrInvalidDeclaration, decl.Buyflow, other, state.StateID, state.Order)
		}

		orders[state.Order] = state.StateID
		f.byID[state.StateID] = state
		f.states = append(f.states, state)
	}
	sortStates(f.states)

	primaries := make(map[primaryKey]struct{})
	for _, action := range decl.Actions {
		if err := validateAction(decl.Buyflow, f, action); err != nil {
			return nil, err
		}

		if action.ActionType == entities.ActionPrimary {
			key := primaryKey{from: action.FromState, user: action.User}
			if _, dup := primaries[key]; dup {
				return nil, fmt.Errorf("%w: buyflow %s: more than one primary action from %s for %s",
					ErrInvalidDeclaration, decl.Buyflow, action.FromState, action.User)
			}
			primaries[key] = struct{}{}
		}

		bound := boundAction{action: cloneAction(action)}
		if action.ActionType != entities.ActionPlaceholderLabel {
			fn, err := factory.GetTransition(action.Transition)
			if err != nil {
				return nil, fmt.Errorf("%w: buyflow %s: %s -> %s: %w",
					ErrInvalidDeclaration, decl.Buyflow, action.FromState, *action.ToState, err)
			}
			if fn == nil {
				return nil, fmt.Errorf("%w: buyflow %s: transition %s resolved to nil",
					ErrInvalidDeclaration, decl.Buyflow, action.Transition)
			}
			bound.transition = fn
		}
		f.actions[action.FromState] = append(f.actions[action.FromState], bound)
	}

	if err := checkReachableStates(decl.Buyflow, f); err != nil {
		return nil, err
	}

	return f, nil
}

func validateAction(buyflow entities.BuyFlowType, f *flow, action entities.BuyflowAction) error {
	if _, ok := f.byID[action.FromState]; !ok {
		return fmt.Errorf("%w: buyflow %s: action from undeclared state %q",
			ErrInvalidDeclaration, buyflow, action.FromState)
	}
	if !action.User.IsValid() {
		return fmt.Errorf("%w: buyflow %s: action from %s has invalid role %q",
			ErrInvalidDeclaration, buyflow, action.FromState, action.User)
	}
	if !action.ActionType.IsValid() {
		return fmt.Errorf("%w: buyflow %s: action from %s has invalid type %q",
			ErrInvalidDeclaration, buyflow, action.FromState, action.ActionType)
	}

	if action.ActionType == entities.ActionPlaceholderLabel {
		if action.ToState != nil || action.Transition != entities.TransitionNone {
			return fmt.Errorf("%w: buyflow %s: placeholder from %s must not be executable",
				ErrInvalidDeclaration, buyflow, action.FromState)
		}
		return nil
	}

	if action.ToState == nil || action.Transition == entities.TransitionNone {
		return fmt.Errorf("%w: buyflow %s: %s action from %s needs a target state and a transition",
			ErrInvalidDeclaration, buyflow, action.ActionType, action.FromState)
	}
	if _, ok := f.byID[*action.ToState]; !ok {
		return fmt.Errorf("%w: buyflow %s: action from %s targets undeclared state %q",
			ErrInvalidDeclaration, buyflow, action.FromState, *action.ToState)
	}
	return nil
}

// checkReachableStates: каждое достижимое из начального нетерминальное состояние
// должно иметь хотя бы одно исполняемое действие, иначе заказ в нем застрянет.
func checkReachableStates(buyflow entities.BuyFlowType, f *flow) error {
	initial := f.states[0].StateID
	visited := map[entities.BuyFlowOrderType]bool{initial: true}
	queue := []entities.BuyFlowOrderType{initial}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		executable := 0
		for _, bound := range f.actions[current] {
			if bound.transition == nil {
				continue
			}
			executable++

			next := *bound.action.ToState
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}

		if executable == 0 && !f.byID[current].Terminal {
			return fmt.Errorf("%w: buyflow %s: state %s is reachable but has no outgoing action and is not terminal",
				ErrInvalidDeclaration, buyflow, current)
		}
	}
	return nil
}
