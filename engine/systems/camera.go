package systems

import (
	"fmt"

	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/renderer/components"
	"github.com/spaghettifunk/prisma/engine/renderer/metadata"
)

type CameraSystem struct {
	Config  *CameraSystemConfig
	Lookup  map[string]uint16
	Cameras []*components.CameraLookup
	// A default, non-registered camera that always exists as a fallback.
	DefaultCamera *components.Camera
}

/** @brief The camera system configuration. */
type CameraSystemConfig struct {
	/**
	 * @brief NOTE: The maximum number of cameras that can be managed by
	 * the system.
	 */
	MaxCameraCount uint16
}

func NewCameraSystem(config *CameraSystemConfig) (*CameraSystem, error) {
	if config.MaxCameraCount == 0 {
		err := fmt.Errorf("func NewCameraSystem - config.MaxCameraCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}
	cs := &CameraSystem{
		Config:  config,
		Cameras: make([]*components.CameraLookup, config.MaxCameraCount),
		Lookup:  make(map[string]uint16, config.MaxCameraCount),
	}
	// Invalidate all cameras in the array.
	for i := uint16(0); i < cs.Config.MaxCameraCount; i++ {
		cs.Cameras[i] = &components.CameraLookup{
			ID:             metadata.InvalidIDUint16,
			ReferenceCount: 0,
		}
	}
	// Setup default camera.
	cs.DefaultCamera = components.NewCamera()
	return cs, nil
}

func (cs *CameraSystem) Shutdown() error {
	return nil
}

/**
 * @brief Acquires a pointer to a camera by name.
 * If one is not found, a new one is created and returned.
 * Internal reference counter is incremented.
 */
func (cs *CameraSystem) Acquire(name string) (*components.Camera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}
	id, ok := cs.Lookup[name]
	if !ok {
		id = metadata.InvalidIDUint16
	}

	if id == metadata.InvalidIDUint16 {
		// Find free slot
		for i := uint16(0); i < cs.Config.MaxCameraCount; i++ {
			if cs.Cameras[i].ID == metadata.InvalidIDUint16 {
				id = i
				break
			}
		}
		if id == metadata.InvalidIDUint16 {
			err := fmt.Errorf("func CameraSystem.Acquire failed to acquire new slot. Adjust camera system config to allow more")
			core.LogError(err.Error())
			return nil, err
		}

		// Create/register the new camera.
		core.LogDebug("Creating new camera named '%s'...", name)
		cs.Cameras[id].Camera = components.NewCamera()
		cs.Cameras[id].ID = id

		// Update the lookup.
		cs.Lookup[name] = id
	}
	cs.Cameras[id].ReferenceCount++
	return cs.Cameras[id].Camera, nil
}

/**
 * @brief Releases a camera with the given name. Internal reference
 * counter is decremented. If this reaches 0, the camera is reset,
 * and the reference is usable by a new camera.
 */
func (cs *CameraSystem) Release(name string) {
	if name == components.DEFAULT_CAMERA_NAME {
		core.LogDebug("Cannot release default camera. Nothing was done.")
		return
	}
	id, ok := cs.Lookup[name]
	if !ok {
		core.LogWarn("CameraSystem.Release failed lookup. Nothing was done.")
		return
	}
	if id != metadata.InvalidIDUint16 {
		// Decrement the reference count, and reset the camera if the counter reaches 0.
		cs.Cameras[id].ReferenceCount--
		if cs.Cameras[id].ReferenceCount < 1 {
			cs.Cameras[id].Camera.Reset()
			cs.Cameras[id].ID = metadata.InvalidIDUint16
			delete(cs.Lookup, name)
		}
	}
}

/**
 * @brief Gets a pointer to the default camera.
 */
func (cs *CameraSystem) GetDefault() *components.Camera {
	return cs.DefaultCamera
}
