// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Envelope: bentuk respons sukses semua endpoint.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       any         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ErrorResponse: bentuk respons gagal (termasuk redirect 303).
type ErrorResponse struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	ErrorCode  string              `json:"error_code,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
	RedirectTo string              `json:"redirect_to,omitempty"`
}

var errorCodes = map[int]string{
	fiber.StatusBadRequest:          "BAD_REQUEST",
	fiber.StatusUnauthorized:        "UNAUTHORIZED",
	fiber.StatusForbidden:           "FORBIDDEN",
	fiber.StatusNotFound:            "NOT_FOUND",
	fiber.StatusConflict:            "CONFLICT",
	fiber.StatusUnprocessableEntity: "VALIDATION_ERROR",
	fiber.StatusTooManyRequests:     "TOO_MANY_REQUESTS",
}

func statusToErrorCode(status int) string {
	if code, ok := errorCodes[status]; ok {
		return code
	}
	if status >= 500 {
		return "INTERNAL_ERROR"
	}
	return "ERROR"
}

func orDefault(message, def string) string {
	if strings.TrimSpace(message) == "" {
		return def
	}
	return message
}

func writeSuccess(c *fiber.Ctx, status int, message string, data any, p *Pagination) error {
	return c.Status(status).JSON(Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: p,
	})
}

// JsonError: error umum (bukan validasi). status 0 dianggap 500.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(ErrorResponse{
		Message:   orDefault(message, "Terjadi kesalahan pada server"),
		ErrorCode: statusToErrorCode(status),
	})
}

// JsonValidationError: 422 dengan daftar pesan per field.
func JsonValidationError(c *fiber.Ctx, fieldErrors map[string][]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Message:   "Validasi gagal",
		ErrorCode: statusToErrorCode(fiber.StatusUnprocessableEntity),
		Errors:    fieldErrors,
	})
}

// JsonRedirect: 303 + Location, body tetap JSON agar klien SPA bisa membaca tujuan.
func JsonRedirect(c *fiber.Ctx, target string) error {
	c.Location(target)
	return c.Status(fiber.StatusSeeOther).JSON(ErrorResponse{
		Message:    "Dialihkan",
		ErrorCode:  "REDIRECT",
		RedirectTo: target,
	})
}

// JsonList: daftar + meta pagination; Count diisi dari panjang data bila kosong.
func JsonList(c *fiber.Ctx, message string, data any, pagination *Pagination) error {
	if pagination != nil && pagination.Count == 0 {
		p := *pagination
		p.Count = lenOf(data)
		pagination = &p
	}
	return writeSuccess(c, fiber.StatusOK, orDefault(message, "ok"), data, pagination)
}

func JsonOK(c *fiber.Ctx, message string, data any) error {
	return writeSuccess(c, fiber.StatusOK, orDefault(message, "ok"), data, nil)
}

func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return writeSuccess(c, fiber.StatusCreated, orDefault(message, "created"), data, nil)
}

func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return writeSuccess(c, fiber.StatusOK, orDefault(message, "updated"), data, nil)
}

func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	return writeSuccess(c, fiber.StatusOK, orDefault(message, "deleted"), data, nil)
}
