// Package models holds the compiled-in product models.
// Product models are modular plugins that can be added without modifying core:
// a new model is a package exposing Register plus one entry in Plugins.
package models

import (
	stderrors "errors"

	"go.uber.org/zap"

	"quotepilot/core/engine"
	"quotepilot/core/registry"
	"quotepilot/internal/errors"
	"quotepilot/models/qpmag"
	"quotepilot/models/qpsah200s"
)

// Plugin contributes one product model to a registry builder
type Plugin struct {
	Name     string
	Register func(*registry.Builder) error
}

// Plugins is the bootstrap list, registered in this order
var Plugins = []Plugin{
	{Name: qpsah200s.ModelName, Register: qpsah200s.Register},
	{Name: qpmag.ModelName, Register: qpmag.Register},
}

// RegisterAll registers every plugin with b, stopping at the first failure
func RegisterAll(b *registry.Builder, plugins ...Plugin) error {
	for _, p := range plugins {
		if err := p.Register(b); err != nil {
			var dup *registry.DuplicateModelError
			if stderrors.As(err, &dup) {
				return errors.Conflict("model", p.Name, err)
			}
			return errors.Wrapf(errors.TypeDefinition, err, "failed to register model %s", p.Name).
				WithContext("model", p.Name)
		}
	}
	return nil
}

// Bootstrap registers all Plugins and seals the catalog. A registration
// failure is returned so the caller can abort startup.
func Bootstrap(logger *zap.Logger) (*registry.Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	b := engine.NewBuilder()
	if err := RegisterAll(b, Plugins...); err != nil {
		logger.Error("model registration failed", zap.Error(err))
		return nil, err
	}

	catalog := b.Seal()
	logger.Info("models registered",
		zap.Strings("models", catalog.ListModels()),
		zap.Int("count", catalog.Len()),
	)
	return catalog, nil
}

// MustBootstrap is like Bootstrap but panics on failure
func MustBootstrap() *registry.Catalog {
	catalog, err := Bootstrap(nil)
	if err != nil {
		panic(err)
	}
	return catalog
}
