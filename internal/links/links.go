// Package links builds messaging deep links for the storefront. Builders are
// pure and perform no phone-number validation; a malformed number simply
// produces a malformed link.
package links

import (
	"net/url"
	"strings"
)

// WhatsApp builds a wa.me chat link carrying a prefilled message. wa.me
// accepts digits only, so every non-digit character of phone is stripped.
func WhatsApp(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String() + "?text=" + escape(message)
}

// SMS builds an sms: URI with a prefilled body. The "?&body" form survives
// both iOS and Android dialers.
func SMS(phone, message string) string {
	return "sms:" + phone + "?&body=" + escape(message)
}

// SignalApp builds the installed-app deep link. Browsers without a handler
// for the sgnl scheme drop it silently; that failure is not detectable here.
func SignalApp(phone, message string) string {
	return "sgnl://send?phone=" + phone + "&text=" + escape(message)
}

// SignalWeb builds the universal signal.me link that needs no installed app.
// It cannot carry a message, only the phone number.
func SignalWeb(phone string) string {
	return "https://signal.me/#p/" + escape(phone)
}

// Tel builds a direct-dial URI with the phone number verbatim.
func Tel(phone string) string {
	return "tel:" + phone
}

// escape percent-encodes s the way encodeURIComponent does: spaces become
// %20, not "+".
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
