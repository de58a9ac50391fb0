package service

type logLoginFailed struct {
	Email   string `logevent:"email"`
	Reason  string `logevent:"reason"`
	Error   string `logevent:"error"`
	Message string `logevent:"message,default=login-failed"`
}

type logUserRegistered struct {
	UserID  string `logevent:"user_id"`
	Message string `logevent:"message,default=user-registered"`
}

type logRegisterFailed struct {
	Email   string `logevent:"email"`
	Stage   string `logevent:"stage"`
	Error   string `logevent:"error"`
	Message string `logevent:"message,default=register-failed"`
}

type logFamilyAccessDenied struct {
	FamilyID string `logevent:"family_id"`
	OwnerID  string `logevent:"owner_id"`
	CallerID string `logevent:"caller_id"`
	Message  string `logevent:"message,default=family-access-denied"`
}

type logFamilyChanged struct {
	FamilyID string `logevent:"family_id"`
	Action   string `logevent:"action"`
	Message  string `logevent:"message,default=family-changed"`
}
