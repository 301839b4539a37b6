package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

// ToastCookie carries a pending toast across a non-HTMX redirect, where the
// HX-Trigger header would be lost. The layout script reads and clears it.
const ToastCookie = "supplydesk_toast"

// SetToast queues a toast notification for the client. HTMX requests get it
// via the HX-Trigger header (merged into any existing trigger payload);
// regular requests get it via the flash cookie on the next page load.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	payload := map[string]any{
		"showToast": map[string]string{
			"message": message,
			"type":    toastType,
		},
	}

	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		var merged map[string]any
		if err := json.Unmarshal([]byte(existing), &merged); err == nil {
			merged["showToast"] = payload["showToast"]
			payload = merged
		} else {
			log.Printf("toast: existing HX-Trigger is not valid JSON, overwriting: %v", err)
		}
	}
	setTriggerHeader(e, payload)

	cookieVal, err := json.Marshal(map[string]string{"message": message, "type": toastType})
	if err != nil {
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     ToastCookie,
		Value:    url.QueryEscape(string(cookieVal)),
		Path:     "/",
		MaxAge:   10,
		HttpOnly: false, // the layout script reads it
		SameSite: http.SameSiteLaxMode,
	})
}

func setTriggerHeader(e *core.RequestEvent, payload map[string]any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))
}

// ErrorToast fires an error toast and sets HX-Reswap: none so HTMX ignores
// the response body instead of swapping the error text into the page.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
