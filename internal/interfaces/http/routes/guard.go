package routes

import "github.com/gin-gonic/gin"

// Guard supplies the checks placed in front of routes. Nil members let
// requests through, which is how the service runs with auth.enforce off.
type Guard struct {
	Authenticate gin.HandlerFunc
	Authorize    func(resource, action string) gin.HandlerFunc
	Throttle     func(scope string) gin.HandlerFunc
}

func (g Guard) authenticate() gin.HandlerFunc {
	if g.Authenticate == nil {
		return passThrough
	}
	return g.Authenticate
}

func (g Guard) authorize(resource, action string) gin.HandlerFunc {
	if g.Authorize == nil {
		return passThrough
	}
	return g.Authorize(resource, action)
}

func (g Guard) throttle(scope string) gin.HandlerFunc {
	if g.Throttle == nil {
		return passThrough
	}
	return g.Throttle(scope)
}

func passThrough(c *gin.Context) {
	c.Next()
}
