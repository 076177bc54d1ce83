package binder

import (
	"mime"
	"net/http"
)

func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return mt
}

func isDataStar(r *http.Request) bool {
	return r.Header.Get("Datastar-Request") == "true"
}
