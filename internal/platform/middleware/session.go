// Copyright (c) 2026 Bookmanager. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"

	"github.com/taibuivan/bookmanager/internal/platform/constants"
	"github.com/taibuivan/bookmanager/internal/platform/ctxutil"
	"github.com/taibuivan/bookmanager/pkg/uuid"
)

// # Browser Session

// Session gives every browser an anonymous session id stored in a cookie.
//
// The id carries no identity; it only scopes flash messages so that a notice
// raised before a redirect is shown to the same browser after it.
func Session(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			sessionID := ""
			if cookie, err := request.Cookie(constants.SessionCookieName); err == nil && uuid.Valid(cookie.Value) {
				sessionID = cookie.Value
			}

			if sessionID == "" {
				sessionID = uuid.New()
				http.SetCookie(writer, &http.Cookie{
					Name:     constants.SessionCookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(constants.SessionCookieTTL.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(writer, request.WithContext(ctxutil.WithSessionID(request.Context(), sessionID)))
		})
	}
}
