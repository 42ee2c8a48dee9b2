package objects

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/zeit/pkg/contracts"
	"github.com/oarkflow/zeit/pkg/models"
)

var (
	Gates      contracts.GateManager
	Store      contracts.Storage
	Data       contracts.Provider
	Config     contracts.Config
	ViewEngine fiber.Views
	Layout     string
	Identity   models.Identity
)
