// Package modkit wires API modules: shared deps, build options and cross module ports
package modkit

import (
	"reflect"

	phttp "paysystem/internal/platform/net/http"
)

// Module is the surface every API module implements
type Module interface {
	// MountRoutes attaches the module endpoints under r
	MountRoutes(r phttp.Router)
	// Ports returns the module port set for cross wiring
	Ports() any
	// Name is used in logs and panics
	Name() string
}

// PortsOf pulls T out of a module's Ports bundle
// the bundle itself may implement T, or one of its exported struct fields may
func PortsOf[T any](m Module) (T, bool) { return portIn[T](m.Ports()) }

// portIn matches p itself or one of its exported struct fields against T
func portIn[T any](p any) (t T, ok bool) {
	if p == nil {
		return t, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.Indirect(reflect.ValueOf(p))
	if rv.Kind() != reflect.Struct {
		return t, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return t, false
}

// MustPortsOf is PortsOf that panics when the port is missing, for bootstrap code
func MustPortsOf[T any](m Module) T {
	if v, ok := PortsOf[T](m); ok {
		return v
	}
	var zero T
	panic("modkit: module " + m.Name() + " does not provide " + reflect.TypeOf(&zero).Elem().String())
}
