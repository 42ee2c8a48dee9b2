package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/zeit/pkg/http/responses"
	"github.com/oarkflow/zeit/pkg/models"
	"github.com/oarkflow/zeit/pkg/utils"
)

func renderErrorPage(c *fiber.Ctx, statusCode int, title, message, description, technical, retryURL string) error {
	errorID := fmt.Sprintf("ERR-%d-%d", time.Now().Unix(), statusCode)
	if utils.WantsJSON(c) {
		return c.Status(statusCode).JSON(fiber.Map{
			"success":  false,
			"error":    message,
			"status":   statusCode,
			"error_id": errorID,
		})
	}
	data := models.ErrorPageData{
		Title:       title,
		StatusCode:  statusCode,
		Message:     message,
		Description: description,
		Technical:   technical,
		RetryURL:    retryURL,
		ErrorID:     errorID,
	}
	c.Status(statusCode)
	return responses.Render(c, utils.ErrorTemplate, data, "")
}

// ErrorHandler is the fiber error handler for anything a route returned
// without answering itself.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("request %s %s failed: %v", c.Method(), c.Path(), err)
	}
	if code == fiber.StatusNotFound {
		return NotFound(c)
	}
	if code < fiber.StatusInternalServerError {
		return renderErrorPage(c, code, "Solicitud inválida",
			"La solicitud no pudo ser procesada.",
			"Verifique la dirección e intente nuevamente.",
			err.Error(), utils.LandingURI)
	}
	return renderErrorPage(c, code, "Error del servidor",
		"Ocurrió un error al procesar la solicitud.",
		"Intente nuevamente en unos momentos.",
		err.Error(), utils.LandingURI)
}
