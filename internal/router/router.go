// Package router exposes the bot's small HTTP surface: liveness and a
// status report for monitoring.
package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/sown/kmibot/internal/bot"
)

// StatusProvider reports the gateway connection state.
type StatusProvider interface {
	Status() bot.Status
}

func InitRouter(mode string, status StatusProvider, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/status", func(c *ginext.Context) {
		s := status.Status()
		code := http.StatusOK
		if !s.Connected {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, s)
	})

	return router
}
