package http

import "strconv"

// Env key suffixes for outbound http client configuration. The full key is
// <SERVICE_PREFIX> + suffix, e.g. MODEL_REGISTRY_HOST.
const (
	Host                      = "_HOST"
	Port                      = "_PORT"
	Timeout                   = "_TIMEOUT_IN_MS"
	DialTimeout               = "_DIAL_TIMEOUT_IN_MS"
	KeepAliveTimeout          = "_KEEP_ALIVE_TIMEOUT_IN_MS"
	MaxIdleConnections        = "_MAX_IDLE_CONNECTIONS"
	MaxIdleConnectionsPerHost = "_MAX_IDLE_CONNECTIONS_PER_HOST"
	IdleConnectionTimeout     = "_IDLE_CONNECTION_TIMEOUT_IN_MS"
)

const (
	HeaderContentType          = "Content-Type"
	HeaderValueApplicationJson = "application/json"

	// HeaderModelVersion carries the requested model version id on serving
	// requests. Absent or empty selects the endpoint's default version.
	HeaderModelVersion = "MODEL-VERSION"
)

func BuildHttpUrl(host string, port int, path string) string {
	return "http://" + host + ":" + strconv.Itoa(port) + path
}
