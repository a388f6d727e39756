// Package entities registers plain CRUD routes for the reference and
// record tables that carry no derived computations or workflow guards.
// Anything with bespoke behaviour (ToRs, assignments, budgets, risks,
// indicators, donor projects) lives in its own route package.
package entities

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"sage-backend/app/crud"
	"sage-backend/app/models"
	"sage-backend/app/routes/auth"
)

type registration struct {
	path     string
	register func(r fiber.Router, db *sql.DB, g crud.Guards)
	guards   crud.Guards
}

func SetupEntityRoutes(app *fiber.App, db *sql.DB) {
	adminDelete := []fiber.Handler{auth.RequireRole(models.RoleAdmin)}
	seniorWrite := []fiber.Handler{auth.RequireRole(models.RoleAdmin, models.RoleFCDOSRO)}

	open := crud.Guards{Delete: adminDelete}
	restricted := crud.Guards{Write: seniorWrite, Delete: adminDelete}

	regs := []registration{
		{"/api/programmes", programmeEntity.Register, restricted},
		{"/api/workstreams", workstreamEntity.Register, open},
		{"/api/countries", countryEntity.Register, restricted},
		{"/api/organisations", organisationEntity.Register, open},
		{"/api/suppliers", supplierEntity.Register, open},
		{"/api/consultants", consultantEntity.Register, open},
		{"/api/deliverables", deliverableEntity.Register, open},
		{"/api/commitments", commitmentEntity.Register, open},
		{"/api/invoices", invoiceEntity.Register, open},
		{"/api/evidence", evidenceEntity.Register, open},
		{"/api/issues", issueEntity.Register, open},
		{"/api/decisions", decisionEntity.Register, open},
		{"/api/lessons", lessonEntity.Register, open},
		{"/api/safeguarding-incidents", safeguardingEntity.Register, restricted},
		{"/api/donor-organisations", donorOrganisationEntity.Register, open},
	}

	for _, reg := range regs {
		group := app.Group(reg.path)
		group.Use(auth.AuthMiddleware)
		reg.register(group, db, reg.guards)
	}
}
