// Package clientip extracts the originating client IP address from
// HTTP requests, checking common proxy headers (X-Forwarded-For,
// X-Real-IP) before falling back to the connection's remote address.
//
// Every candidate value is validated and normalized with net.ParseIP,
// so callers can safely put the result in structured logs:
//
//	log.Info("authenticated request", "remote_ip", clientip.GetIP(r))
package clientip
