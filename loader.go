package altecs

import (
	"fmt"
	"path/filepath"
	"plugin"
	"sync"
)

// MainFunc is the entry point of a logic module. It builds the module's
// Application against the host's API.
type MainFunc func(api NativeAPI) (*Application, error)

// Loader finds the MainFunc of a resource.
type Loader interface {
	Load(info ResourceInfo) (MainFunc, error)
}

// StaticLoader serves modules compiled into the host shim, keyed by
// resource name.
type StaticLoader struct {
	mu      sync.RWMutex
	modules map[string]MainFunc
}

// NewStaticLoader creates a loader serving modules.
func NewStaticLoader(modules map[string]MainFunc) *StaticLoader {
	l := &StaticLoader{modules: make(map[string]MainFunc, len(modules))}
	for name, fn := range modules {
		l.modules[name] = fn
	}
	return l
}

// Add registers a module under name, replacing any previous one.
func (l *StaticLoader) Add(name string, fn MainFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.modules[name] = fn
}

// Load implements Loader.
func (l *StaticLoader) Load(info ResourceInfo) (MainFunc, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn, ok := l.modules[info.Name]
	if !ok {
		return nil, fmt.Errorf("load %s: %w", info.Name, ErrModuleNotFound)
	}
	return fn, nil
}

// PluginLoader opens the resource's main file as a Go plugin and looks up
// its MainFunc.
type PluginLoader struct {
	// Symbol is the exported name of the MainFunc, usually "Main".
	Symbol string
}

// NewPluginLoader creates a PluginLoader looking up cfg.PluginSymbol.
func NewPluginLoader(cfg Config) PluginLoader {
	return PluginLoader{Symbol: cfg.PluginSymbol}
}

// Load implements Loader. An empty Symbol looks up "Main".
func (l PluginLoader) Load(info ResourceInfo) (MainFunc, error) {
	symbol := l.Symbol
	if symbol == "" {
		symbol = DefaultConfig().PluginSymbol
	}

	path := info.Main
	if !filepath.IsAbs(path) {
		path = filepath.Join(info.Path, info.Main)
	}

	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: open %s: %w", info.Name, path, err)
	}
	sym, err := p.Lookup(symbol)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w: %w", info.Name, ErrModuleNotFound, err)
	}

	switch fn := sym.(type) {
	case func(NativeAPI) (*Application, error):
		return fn, nil
	case *MainFunc:
		return *fn, nil
	case *func(NativeAPI) (*Application, error):
		return *fn, nil
	default:
		return nil, fmt.Errorf("load %s: symbol %s has type %T: %w", info.Name, symbol, sym, ErrLoaderFailed)
	}
}
