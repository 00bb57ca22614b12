package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tablerota/rotation-api/internal/api/handler/router"
	"github.com/tablerota/rotation-api/internal/config"
)

// httprouter panics at registration when a static segment and a :param
// segment collide at the same position of one method tree, which would
// kill the server before it ever binds. Registering the full route table
// is the guard against reintroducing such a collision.
func TestAllRouteGroupsRegisterTogether(t *testing.T) {
	assert.NotPanics(t, func() {
		router.New(
			router.WithRoutes(Healthcheck()...),
			router.WithRoutes(Authentication(nil)...),
			router.WithRoutes(Featured(nil)...),
			router.WithRoutes(Queue(nil, nil, &config.Config{})...),
			router.WithRoutes(Rotation(nil, nil, nil, nil, nil)...),
		)
	})
}
