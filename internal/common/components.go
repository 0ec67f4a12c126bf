package common

const (
	ComponentCoordinator = "coordinator"
	ComponentRunner      = "runner"
	ComponentHeadTracker = "head-tracker"
	ComponentRangeStore  = "range-store"
	ComponentStrategy    = "strategy"
	ComponentMaintenance = "maintenance"
	ComponentAPI         = "api"
)

var AllComponents = map[string]struct{}{
	ComponentCoordinator: {},
	ComponentRunner:      {},
	ComponentHeadTracker: {},
	ComponentRangeStore:  {},
	ComponentStrategy:    {},
	ComponentMaintenance: {},
	ComponentAPI:         {},
}
