package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/mileusna/useragent"

	"github.com/rackline/rackline-go/internal/geoip"
	"github.com/rackline/rackline-go/internal/store"
)

// Activity creates middleware that records mutating admin requests in the
// activity log with the client's IP, parsed browser, and GeoIP country. Reads
// are not logged; the audit trail covers changes only.
func Activity(st *store.Store, sm *scs.SessionManager, geo *geoip.Lookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			country := ""
			if geo != nil {
				country = geo.LookupCountry(ClientIP(r))
			}
			ctx := context.WithValue(r.Context(), ContextKeyCountry, country)
			r = r.WithContext(ctx)

			next.ServeHTTP(w, r)

			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			default:
				return
			}

			ua := useragent.Parse(r.UserAgent())
			userID := ""
			if sm != nil {
				if adminID := sm.GetInt64(r.Context(), SessionKeyAdminID); adminID != 0 {
					userID = fmt.Sprintf("admin:%d", adminID)
				}
			}

			st.CreateActivityLog(store.CreateActivityLogParams{
				UserID:    userID,
				Action:    r.Method + " " + r.URL.Path,
				IPAddress: ClientIP(r),
				UserAgent: ua.Name + " " + ua.Version,
				Details:   fmt.Sprintf(`{"country":%q,"os":%q,"mobile":%t}`, country, ua.OS, ua.Mobile),
			})
		})
	}
}

// CountryFromContext returns the GeoIP country tagged onto the request, if any.
func CountryFromContext(ctx context.Context) string {
	country, _ := ctx.Value(ContextKeyCountry).(string)
	return country
}
