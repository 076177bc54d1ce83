// Package clientip resolves the client address of a request behind proxies.
//
// A Resolver reads forwarding headers only when the direct peer is a
// configured proxy:
//
//	res, err := clientip.NewResolver(clientip.Config{TrustedProxies: []string{"10.0.0.0/8"}})
//	r.Use(res.Middleware)
package clientip

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Config lists the proxies whose forwarding headers are believed. Entries
// are CIDR prefixes or single addresses.
type Config struct {
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Resolver extracts client IPs from requests.
type Resolver struct {
	trusted  []netip.Prefix
	trustAll bool
}

// NewResolver parses cfg. With no trusted proxies every header is ignored and
// the client IP is the peer address.
func NewResolver(cfg Config) (*Resolver, error) {
	res := &Resolver{}
	for _, entry := range cfg.TrustedProxies {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		prefix, err := parsePrefix(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProxy, entry)
		}
		res.trusted = append(res.trusted, prefix)
	}
	return res, nil
}

func parsePrefix(s string) (netip.Prefix, error) {
	if strings.Contains(s, "/") {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Prefix{}, err
		}
		return p.Masked(), nil
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, err
	}
	addr = addr.Unmap()
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

var trustAll = &Resolver{trustAll: true}

// GetIP returns the client IP believing every forwarding header, checking in
// order CF-Connecting-IP, the first valid X-Forwarded-For entry, X-Real-IP
// and RemoteAddr. Use a Resolver when the result guards anything.
func GetIP(r *http.Request) string {
	return trustAll.IP(r)
}

// IP returns the normalized client IP, or an empty string when no valid
// address is found.
func (res *Resolver) IP(r *http.Request) string {
	peer, ok := peerAddr(r.RemoteAddr)
	if !res.trustAll && (!ok || !res.isTrusted(peer)) {
		if !ok {
			return ""
		}
		return peer.String()
	}

	if ip, ok := parseIP(r.Header.Get("CF-Connecting-IP")); ok {
		return ip.String()
	}
	if ip, ok := res.forwardedFor(r.Header.Get("X-Forwarded-For")); ok {
		return ip.String()
	}
	if ip, ok := parseIP(r.Header.Get("X-Real-IP")); ok {
		return ip.String()
	}
	if !ok {
		return ""
	}
	return peer.String()
}

// forwardedFor picks the client from an X-Forwarded-For chain. Trusting all
// hops it is the first valid entry; otherwise it is the rightmost entry that
// is not a trusted proxy.
func (res *Resolver) forwardedFor(header string) (netip.Addr, bool) {
	if header == "" {
		return netip.Addr{}, false
	}
	parts := strings.Split(header, ",")
	if res.trustAll {
		for _, part := range parts {
			if ip, ok := parseIP(part); ok {
				return ip, true
			}
		}
		return netip.Addr{}, false
	}
	for i := len(parts) - 1; i >= 0; i-- {
		ip, ok := parseIP(parts[i])
		if !ok {
			return netip.Addr{}, false
		}
		if !res.isTrusted(ip) {
			return ip, true
		}
	}
	return netip.Addr{}, false
}

func (res *Resolver) isTrusted(ip netip.Addr) bool {
	for _, p := range res.trusted {
		if p.Contains(ip) {
			return true
		}
	}
	return false
}

func peerAddr(remote string) (netip.Addr, bool) {
	host, _, err := net.SplitHostPort(remote)
	if err != nil {
		return parseIP(remote)
	}
	return parseIP(host)
}

func parseIP(s string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware stores the client IP in the request context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.IP(r))))
	})
}

// Key is a rate limit key function returning the client IP.
func (res *Resolver) Key(r *http.Request) string {
	if ip := FromContext(r.Context()); ip != "" {
		return ip
	}
	return res.IP(r)
}

// LogExtractor adds the client IP to log records.
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	if ip := FromContext(ctx); ip != "" {
		return slog.String("client_ip", ip), true
	}
	return slog.Attr{}, false
}
