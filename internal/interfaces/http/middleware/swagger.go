package middleware

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/dicky/portfolio/internal/infrastructure/config"
	"github.com/dicky/portfolio/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SwaggerProtection guards the API documentation routes.
//
// Disabled docs answer 404. With AllowedIPs set, other clients get 403.
// With RequireAuth set, auth runs before the docs handler and may abort.
// Unparseable allow-list entries are ignored, so a typo locks clients out
// rather than opening the docs.
func SwaggerProtection(cfg config.SwaggerConfig, auth gin.HandlerFunc) gin.HandlerFunc {
	allowed := parseAllowList(cfg.AllowedIPs)

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.AbortWithStatusJSON(http.StatusNotFound,
				dto.NewErrorResponse(dto.ErrCodeNotFound, "API documentation is not available"))
			return
		}

		if len(cfg.AllowedIPs) > 0 && !ipAllowed(c.ClientIP(), allowed) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Access to API documentation is restricted"))
			return
		}

		if cfg.RequireAuth && auth != nil {
			auth(c)
			if c.IsAborted() {
				return
			}
		}

		c.Next()
	}
}

// parseAllowList turns IPs and CIDRs into prefixes; a bare IP becomes a
// single-address prefix
func parseAllowList(entries []string) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if strings.Contains(entry, "/") {
			if p, err := netip.ParsePrefix(entry); err == nil {
				prefixes = append(prefixes, p.Masked())
			}
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			addr = addr.Unmap()
			prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
		}
	}
	return prefixes
}

func ipAllowed(clientIP string, allowed []netip.Prefix) bool {
	addr, err := netip.ParseAddr(clientIP)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range allowed {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
