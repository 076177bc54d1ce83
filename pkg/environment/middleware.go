package environment

import "net/http"

// Header reports the environment on every response outside production.
const Header = "X-Storefront-Env"

// Middleware stores env in every request context. Outside production it also
// sets Header and asks crawlers not to index the staging or development
// storefront.
func Middleware(env Environment) func(http.Handler) http.Handler {
	public := env == Production
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !public {
				w.Header().Set(Header, string(env))
				w.Header().Set("X-Robots-Tag", "noindex, nofollow")
			}
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), env)))
		})
	}
}
