package v1

type logInvoked struct {
	Function  string `logevent:"function"`
	Method    string `logevent:"method"`
	Path      string `logevent:"path"`
	RequestID string `logevent:"request_id"`
	Message   string `logevent:"message,default=handler-invoked"`
}

type logPanic struct {
	Function string `logevent:"function"`
	Path     string `logevent:"path"`
	Reason   string `logevent:"reason"`
	Message  string `logevent:"message,default=handler-panic"`
}

type logLocalIdentity struct {
	UserID  string `logevent:"user_id"`
	Source  string `logevent:"source"`
	Message string `logevent:"message,default=local-identity-fallback"`
}

type logRequestFailed struct {
	Function  string `logevent:"function"`
	Operation string `logevent:"operation"`
	Reason    string `logevent:"reason"`
	Message   string `logevent:"message,default=request-failed"`
}

type logInvokeFailed struct {
	Function string `logevent:"function"`
	Type     string `logevent:"type"`
	Reason   string `logevent:"reason"`
	Message  string `logevent:"message,default=invoke-failed"`
}

type logProxyFailed struct {
	Function string `logevent:"function"`
	Path     string `logevent:"path"`
	Reason   string `logevent:"reason"`
	Message  string `logevent:"message,default=proxy-invoke-failed"`
}
