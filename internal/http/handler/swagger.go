package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"resumebuilder/docs"
)

// SwaggerUI serves the API docs. publicHost, when set, is advertised as the
// API host; otherwise the request's Host header is used.
func SwaggerUI(publicHost string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		host, scheme := docsTarget(c, publicHost)
		docs.SwaggerInfo.Host = host
		docs.SwaggerInfo.Schemes = []string{scheme}
		return swagger.HandlerDefault(c)
	}
}

func docsTarget(c *fiber.Ctx, publicHost string) (host, scheme string) {
	scheme = c.Protocol()
	if proto := c.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	host = publicHost
	if host == "" {
		host = c.Get(fiber.HeaderHost)
	}
	return host, scheme
}
