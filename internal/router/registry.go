package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and registers them on the engine.
// The task surface lives at the engine root (/tasks) while the submission
// surface lives under /api, so modules pick their group at Add time.
type Registry struct {
	Engine      *gin.Engine
	Root        *gin.RouterGroup
	API         *gin.RouterGroup
	rootModules []Module
	apiModules  []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{
		Engine: engine,
		Root:   engine.Group("/"),
		API:    engine.Group("/api"),
	}
}

// AddRoot registers a module on the engine root group.
func (r *Registry) AddRoot(mod Module) {
	r.rootModules = append(r.rootModules, mod)
}

// AddAPI registers a module under the /api group.
func (r *Registry) AddAPI(mod Module) {
	r.apiModules = append(r.apiModules, mod)
}

func (r *Registry) RegisterAll() {
	for _, m := range r.rootModules {
		m.Register(r.Root)
	}
	for _, m := range r.apiModules {
		m.Register(r.API)
	}
}
