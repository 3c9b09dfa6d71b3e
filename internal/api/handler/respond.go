package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// The response envelope is fixed: 200 {"success":true,"data":…} or
// 400 {"success":false,"error":…}. Body decode failures additionally carry
// an explicit null data field, matching the historical contract.

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type decodeErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    any    `json:"data"`
}

func restOK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, successEnvelope{Success: true, Data: data})
}

func restError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, errorEnvelope{Success: false, Error: message})
}

func restDecodeError(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, decodeErrorEnvelope{
		Success: false,
		Error:   "Invalid or missing field in JSON request body",
		Data:    nil,
	})
}
