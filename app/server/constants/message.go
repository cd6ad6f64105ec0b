package constants

// 返回给客户端的提示信息
const (
	MessageFieldsRequired      = "All fields are required."
	MessageLoginFieldsRequired = "please fill the required fields!"
	MessageEmailInvalid        = "email not valid"
	MessagePasswordWeak        = "password must be at least five characters long with at least one numerical character"
	MessageAlreadyRegistered   = "%s: already registered!"
	MessageInvalidCredentials  = "invalid email or password"
	MessageAccountLocked       = "Account locked, please contact the admin!"
	MessageNotAuthorized       = "Not authorized!"
	MessageIDNotFound          = "id not found!"
	MessageIDInvalid           = "id not valid!"
	MessageUserNotFound        = "user not found!"
)
