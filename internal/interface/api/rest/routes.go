package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth     = RouteApiV1 + "/auth"
	RouteRegister = RouteAuth + "/register"
	RouteLogin    = RouteAuth + "/login"

	// users
	RouteUsers       = RouteApiV1 + "/users"
	RouteUser        = RouteUsers + "/:user_id"
	RouteUserNumbers = RouteUser + "/phone-numbers"
	RouteUserNumber  = RouteUserNumbers + "/:number_id"

	// phone numbers / call logs
	RouteNumbers        = RouteApiV1 + "/phone-numbers"
	RouteNumber         = RouteNumbers + "/:number_id"
	RouteNumberCalls    = RouteNumber + "/calls"
	RouteNumberCallLogs = RouteNumber + "/call-logs"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
