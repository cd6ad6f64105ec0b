package validators

import (
	"errors"
	"github.com/go-playground/validator/v10"
)

// 自定义校验标签
const (
	TagRequired       = "required"
	TagEmailSyntax    = "email_syntax"
	TagPasswordPolicy = "password_policy"
)

// EchoValidator 实现 echo.Validator ，供 c.Validate 使用
type EchoValidator struct {
	v *validator.Validate
}

func NewEchoValidator() *EchoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 注册失败只可能是标签名冲突，属于编程错误
	if err := v.RegisterValidation(TagEmailSyntax, func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation(TagPasswordPolicy, func(fl validator.FieldLevel) bool {
		return IsPassword(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return &EchoValidator{v: v}
}

func (ev *EchoValidator) Validate(i interface{}) error {
	return ev.v.Struct(i)
}

// FailedTag 返回最需要报告的失败标签：缺失字段优先，其次按字段顺序
func FailedTag(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return ""
	}

	for _, fe := range verrs {
		if fe.Tag() == TagRequired {
			return TagRequired
		}
	}

	return verrs[0].Tag()
}
