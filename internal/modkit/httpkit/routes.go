package httpkit

import "net/http"

// MountUnder mounts a subrouter at prefix and applies per module middlewares
// an empty prefix mounts on r itself inside a group
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	attach := func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	}
	if prefix == "" || prefix == "/" {
		r.Group(attach)
		return
	}
	r.Route(prefix, attach)
}
