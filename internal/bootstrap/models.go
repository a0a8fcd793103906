package bootstrap

import (
	"github.com/boolean-maybe/todos/config"
	"github.com/boolean-maybe/todos/model"
	"github.com/boolean-maybe/todos/store"
)

// InitHeaderAndLayoutModels creates the header config and layout model with
// persisted visibility preferences applied.
func InitHeaderAndLayoutModels() (*model.HeaderConfig, *model.LayoutModel) {
	headerConfig := model.NewHeaderConfig()
	layoutModel := model.NewLayoutModel()

	// Load user preference from saved config
	headerVisible := config.GetHeaderVisible()
	headerConfig.SetUserPreference(headerVisible)
	headerConfig.SetVisible(headerVisible)

	return headerConfig, layoutModel
}

// InitHeaderBaseStats initializes base header stats that are always visible regardless of view.
func InitHeaderBaseStats(headerConfig *model.HeaderConfig, taskStore store.Store) {
	headerConfig.SetBaseStat("Version", config.Version, 0)
	for _, stat := range taskStore.GetStats() {
		headerConfig.SetBaseStat(stat.Name, stat.Value, stat.Order)
	}
}
