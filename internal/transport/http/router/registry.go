package router

import (
	"sort"

	"github.com/gin-gonic/gin"
)

// APIModule mounts its routes on the /api group.
type APIModule interface{ MountAPI(*gin.RouterGroup) }

// Modules implementing prioritizer mount in ascending order; default 100.
type prioritizer interface{ Priority() int }

// MountAPI mounts mods on g, lowest priority first.
func MountAPI(g *gin.RouterGroup, mods ...APIModule) {
	mods = append([]APIModule(nil), mods...)
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAPI(g)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
