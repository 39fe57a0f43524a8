package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/Xushengqwer/forum_service/myErrors"
)

// Envelope 统一响应结构
// - 成功: {status: true, message, data}
// - 失败: {status: false, message, errors: [...]}
type Envelope struct {
	Status  bool     `json:"status"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// MarshalJSON 成功时总带 data（空时为 {}），失败时总带 errors（空时为 []）
func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.Status {
		data := e.Data
		if data == nil {
			data = struct{}{}
		}
		return json.Marshal(struct {
			Status  bool   `json:"status"`
			Message string `json:"message"`
			Data    any    `json:"data"`
		}{e.Status, e.Message, data})
	}
	errs := e.Errors
	if errs == nil {
		errs = []string{}
	}
	return json.Marshal(struct {
		Status  bool     `json:"status"`
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}{e.Status, e.Message, errs})
}

// Success 200
func Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Status: true, Message: message, Data: data})
}

// Created 201
func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Status: true, Message: message, Data: data})
}

// Failure 按错误类型映射状态码并写出失败信封。
func Failure(c *gin.Context, err error) {
	status, envelope := Resolve(err)
	c.AbortWithStatusJSON(status, envelope)
}

// Resolve 把任意错误翻译成状态码与失败信封，不写响应。
func Resolve(err error) (int, Envelope) {
	fail := func(status int, message string, details []string) (int, Envelope) {
		if details == nil {
			details = []string{}
		}
		return status, Envelope{Status: false, Message: message, Errors: details}
	}

	if appErr, ok := myErrors.As(err); ok {
		return fail(appErr.HTTPStatus(), appErr.Message, appErr.Details)
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fail(http.StatusBadRequest, "参数校验失败", FieldMessages(validationErrs))
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fail(http.StatusBadRequest, "记录已存在", []string{"违反唯一约束"})
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fail(http.StatusBadRequest, "关联的记录不存在", nil)
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		return fail(http.StatusNotFound, "记录未找到", nil)
	}

	return fail(http.StatusInternalServerError, "服务器内部错误", nil)
}

// BadBinding 请求体或查询参数绑定失败时使用。
func BadBinding(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		Failure(c, err)
		return
	}
	Failure(c, myErrors.NewBadRequest("请求参数格式错误", err.Error()))
}

// FieldMessages 将校验错误逐字段翻译成可读信息
func FieldMessages(errs validator.ValidationErrors) []string {
	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			out = append(out, fmt.Sprintf("字段 '%s' 是必填项", field))
		case "max":
			out = append(out, fmt.Sprintf("字段 '%s' 不能超过 %s", field, fe.Param()))
		case "min":
			out = append(out, fmt.Sprintf("字段 '%s' 不能少于 %s", field, fe.Param()))
		case "oneof":
			out = append(out, fmt.Sprintf("字段 '%s' 必须是以下值之一: %s", field, fe.Param()))
		case "email":
			out = append(out, fmt.Sprintf("字段 '%s' 不是有效的邮箱地址", field))
		default:
			out = append(out, fmt.Sprintf("字段 '%s' 验证失败: %s", field, fe.Tag()))
		}
	}
	return out
}

// RegisterJSONFieldNames 让 gin 的校验错误使用 json/form 标签名而非 Go 字段名。
func RegisterJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
}
