package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/renderer/metadata"
)

type ShaderSourceInfo struct {
	Path       string
	LastLoaded time.Time
}

/**
 * @brief Watches the shader assets directory and surfaces reload events
 * so the host can hand the changed source back to the GPU compiler
 * collaborator. Before an event is emitted the changed vertex source is
 * checked against the forward program contract; a source that dropped a
 * required attribute or uniform is reported and NOT surfaced for reload.
 */
type ShaderWatcher struct {
	sources  map[string]ShaderSourceInfo
	contract *metadata.ShaderProgramConfig

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	reloads  chan string
	errors   chan error
}

func NewShaderWatcher(contract *metadata.ShaderProgramConfig) (*ShaderWatcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &ShaderWatcher{
		sources:  make(map[string]ShaderSourceInfo),
		contract: contract,
		fsnotify: fsWatch,
		reloads:  make(chan string),
		errors:   make(chan error),
		done:     make(chan struct{}),
	}, nil
}

func (sw *ShaderWatcher) Initialize(shaderDir string) error {
	go sw.start()

	if err := sw.add(shaderDir); err != nil {
		return err
	}

	entries, err := os.ReadDir(shaderDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(shaderDir, entry.Name())
		sw.mutex.Lock()
		sw.sources[path] = ShaderSourceInfo{Path: path, LastLoaded: time.Now()}
		sw.mutex.Unlock()
	}
	return nil
}

// Reloads emits the path of every shader source that changed on disk
// and still satisfies the program contract.
func (sw *ShaderWatcher) Reloads() <-chan string {
	return sw.reloads
}

func (sw *ShaderWatcher) Errors() <-chan error {
	return sw.errors
}

func (sw *ShaderWatcher) add(name string) error {
	if sw.isClosed {
		return errors.New("shader watcher instance already closed")
	}
	return sw.fsnotify.Add(name)
}

func (sw *ShaderWatcher) start() {
	for {
		select {
		case event, ok := <-sw.fsnotify.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			sw.handleChange(event.Name)
		case err, ok := <-sw.fsnotify.Errors:
			if !ok {
				return
			}
			sw.errors <- err
		case <-sw.done:
			return
		}
	}
}

func (sw *ShaderWatcher) handleChange(path string) {
	// Only vertex stage sources carry the full attribute/uniform
	// surface the contract names.
	if strings.HasSuffix(path, ".vert") {
		source, err := os.ReadFile(path)
		if err != nil {
			sw.errors <- err
			return
		}
		if err := sw.contract.ValidateSource(string(source)); err != nil {
			core.LogError("shader source '%s' rejected: %s", path, err.Error())
			sw.errors <- &core.ShaderCompilationError{
				ShaderName: sw.contract.Name,
				Detail:     err.Error(),
			}
			return
		}
	}

	sw.mutex.Lock()
	sw.sources[path] = ShaderSourceInfo{Path: path, LastLoaded: time.Now()}
	sw.mutex.Unlock()

	core.LogInfo("shader source '%s' changed, surfacing reload", path)
	sw.reloads <- path
}

func (sw *ShaderWatcher) Close() error {
	if sw.isClosed {
		return nil
	}
	sw.isClosed = true
	close(sw.done)
	return sw.fsnotify.Close()
}
