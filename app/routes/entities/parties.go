package entities

import (
	"sage-backend/app/crud"
	"sage-backend/app/models"
)

var countryEntity = &crud.Entity[models.Country]{
	Table:        "countries",
	Columns:      []string{"id", "name", "iso_code", "region", "created_at", "updated_at"},
	Filters:      map[string]string{"region": "region"},
	DefaultOrder: "name ASC",
	Scan: func(r crud.Row) (*models.Country, error) {
		c := &models.Country{}
		err := r.Scan(&c.ID, &c.Name, &c.ISOCode, &c.Region, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return c, nil
	},
	InsertCols: []string{"name", "iso_code", "region"},
	InsertVals: func(c *models.Country) []any {
		return []any{c.Name, c.ISOCode, c.Region}
	},
}

var organisationEntity = &crud.Entity[models.Organisation]{
	Table:        "organisations",
	Columns:      []string{"id", "name", "org_type", "country_id", "created_at", "updated_at"},
	Filters:      map[string]string{"country_id": "country_id", "org_type": "org_type"},
	DefaultOrder: "name ASC",
	Scan: func(r crud.Row) (*models.Organisation, error) {
		o := &models.Organisation{}
		var countryID *string
		err := r.Scan(&o.ID, &o.Name, &o.OrgType, &countryID, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, err
		}
		o.CountryID = countryID
		return o, nil
	},
	InsertCols: []string{"name", "org_type", "country_id"},
	InsertVals: func(o *models.Organisation) []any {
		return []any{o.Name, o.OrgType, o.CountryID}
	},
}

var supplierEntity = &crud.Entity[models.Supplier]{
	Table:        "suppliers",
	Columns:      []string{"id", "name", "contact_email", "created_at", "updated_at"},
	DefaultOrder: "name ASC",
	Scan: func(r crud.Row) (*models.Supplier, error) {
		s := &models.Supplier{}
		err := r.Scan(&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return s, nil
	},
	InsertCols: []string{"name", "contact_email"},
	InsertVals: func(s *models.Supplier) []any {
		return []any{s.Name, s.ContactEmail}
	},
}

var consultantEntity = &crud.Entity[models.Consultant]{
	Table: "consultants",
	Columns: []string{"id", "first_name", "last_name", "email", "organisation_id",
		"specialism", "created_at", "updated_at"},
	Filters:      map[string]string{"organisation_id": "organisation_id", "specialism": "specialism"},
	DefaultOrder: "last_name ASC, first_name ASC",
	Scan: func(r crud.Row) (*models.Consultant, error) {
		co := &models.Consultant{}
		var orgID *string
		err := r.Scan(&co.ID, &co.FirstName, &co.LastName, &co.Email, &orgID,
			&co.Specialism, &co.CreatedAt, &co.UpdatedAt)
		if err != nil {
			return nil, err
		}
		co.OrganisationID = orgID
		return co, nil
	},
	InsertCols: []string{"first_name", "last_name", "email", "organisation_id", "specialism"},
	InsertVals: func(co *models.Consultant) []any {
		return []any{co.FirstName, co.LastName, co.Email, co.OrganisationID, co.Specialism}
	},
}

var donorOrganisationEntity = &crud.Entity[models.DonorOrganisation]{
	Table:        "donor_organisations",
	Columns:      []string{"id", "name", "donor_type", "created_at", "updated_at"},
	Filters:      map[string]string{"donor_type": "donor_type"},
	DefaultOrder: "name ASC",
	Scan: func(r crud.Row) (*models.DonorOrganisation, error) {
		d := &models.DonorOrganisation{}
		err := r.Scan(&d.ID, &d.Name, &d.DonorType, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return d, nil
	},
	InsertCols: []string{"name", "donor_type"},
	InsertVals: func(d *models.DonorOrganisation) []any {
		return []any{d.Name, d.DonorType}
	},
}
