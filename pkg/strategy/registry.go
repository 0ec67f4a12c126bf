package strategy

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/pkg/config"
)

// Factory is a function that creates a new strategy instance.
type Factory func(cfg config.StrategyConfig, deps Deps) (Strategy, error)

var (
	registry = make(map[string]Factory)
	mu       sync.RWMutex
)

// Register registers a strategy factory with the given type name.
// This is typically called in init() functions of strategy packages.
// The type name is case-insensitive and will be stored in lowercase.
func Register(strategyType string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()

	name := strings.ToLower(strategyType)
	if _, exists := registry[name]; exists {
		logger.GetDefaultLogger().Infof("strategy type %s already registered, it will be overwritten", name)
	}

	registry[name] = factory
}

// GetFactory returns the factory for the given strategy type, or nil.
// The lookup is case-insensitive.
func GetFactory(strategyType string) Factory {
	mu.RLock()
	defer mu.RUnlock()
	return registry[strings.ToLower(strategyType)]
}

// ListRegistered returns the sorted list of registered strategy types.
func ListRegistered() []string {
	mu.RLock()
	defer mu.RUnlock()

	types := make([]string, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Create builds a strategy from its configuration using the registered factory.
func Create(cfg config.StrategyConfig, deps Deps) (Strategy, error) {
	factory := GetFactory(cfg.Type)
	if factory == nil {
		return nil, fmt.Errorf("unknown strategy type: %s (registered types: %v)", cfg.Type, ListRegistered())
	}

	s, err := factory(cfg, deps)
	if err != nil {
		return nil, fmt.Errorf("failed to create strategy %s: %w", cfg.Name, err)
	}

	return s, nil
}

// CreateAll builds every configured strategy, in configuration order.
func CreateAll(cfgs []config.StrategyConfig, deps Deps) ([]Strategy, error) {
	strategies := make([]Strategy, 0, len(cfgs))
	for _, cfg := range cfgs {
		s, err := Create(cfg, deps)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, s)
	}
	return strategies, nil
}
