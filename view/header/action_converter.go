package header

import (
	"github.com/boolean-maybe/todos/controller"
	"github.com/boolean-maybe/todos/model"
)

// modelActionToControllerAction converts a model.HeaderAction to controller.Action
func modelActionToControllerAction(a model.HeaderAction) controller.Action {
	return controller.Action{
		ID:           controller.ActionID(a.ID),
		Key:          a.Key,
		Rune:         a.Rune,
		Label:        a.Label,
		Modifier:     a.Modifier,
		ShowInHeader: a.ShowInHeader,
	}
}

// extractViewActionsFromModel extracts view-specific actions from model.HeaderAction slice,
// filtering out global actions and duplicates.
func extractViewActionsFromModel(
	viewActions []model.HeaderAction,
	globalIDs map[controller.ActionID]bool,
) []controller.Action {
	var result []controller.Action
	seen := make(map[controller.ActionID]bool)

	for _, a := range viewActions {
		if !a.ShowInHeader {
			continue
		}

		actionID := controller.ActionID(a.ID)
		// skip if this is a global action or duplicate
		if globalIDs[actionID] || seen[actionID] {
			continue
		}

		seen[actionID] = true
		result = append(result, modelActionToControllerAction(a))
	}

	return result
}
