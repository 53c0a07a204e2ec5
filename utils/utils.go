package utils

import "github.com/gofiber/fiber/v2"

// GetRealIP prefers the forwarded chain, then the X-Real-Ip header set by
// the reverse proxy, then the socket address
func GetRealIP(c *fiber.Ctx) string {
	if ips := c.IPs(); len(ips) > 0 {
		return ips[0]
	}
	if ip := c.Get("X-Real-Ip"); ip != "" {
		return ip
	}
	return c.IP()
}
