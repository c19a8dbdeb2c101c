package utils

import (
	"encoding/json"
	"strconv"

	httpError "chama-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result is the envelope every usecase returns to its controller.
type Result struct {
	Data  interface{}
	Error interface{}
}

type baseResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data,omitempty"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(baseResponse{
		Success: true,
		Message: message,
		Code:    code,
		Data:    data,
	})
}

func ResponseError(err interface{}, ctx *fiber.Ctx) error {
	if errObj, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(errObj.Code).JSON(baseResponse{
			Success: false,
			Message: errObj.Message,
			Code:    errObj.Code,
		})
	}
	if e, ok := err.(error); ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(baseResponse{
			Success: false,
			Message: e.Error(),
			Code:    fiber.StatusBadRequest,
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(baseResponse{
		Success: false,
		Message: "internal server error",
		Code:    fiber.StatusInternalServerError,
	})
}

func ConvertString(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func ConvertInt(v interface{}) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		n, _ := strconv.Atoi(val)
		return n
	default:
		return 0
	}
}
