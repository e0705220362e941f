package middleware

import (
	"net"

	"contacts/internal/errors"

	"github.com/labstack/echo/v4"
)

// NewIPExtractor decides what c.RealIP reports. Without trusted proxies the
// peer address is used and forwarding headers are ignored. With them,
// X-Forwarded-For is walked back only through peers inside the listed CIDRs.
func NewIPExtractor(trustedProxies []string) (echo.IPExtractor, error) {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid trusted proxy %q", cidr)
		}
		options = append(options, echo.TrustIPRange(ipNet))
	}

	return echo.ExtractIPFromXFFHeader(options...), nil
}
