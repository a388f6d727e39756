package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema. Statements are idempotent so the
// service can run them on every startup.
func RunMigrations(db *sql.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS programmes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			description TEXT,
			start_date DATE,
			end_date DATE,
			rag_status VARCHAR(10),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS workstreams (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			programme_id UUID NOT NULL REFERENCES programmes(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			lead VARCHAR(255),
			rag_status VARCHAR(10),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS countries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			iso_code VARCHAR(3) UNIQUE NOT NULL,
			region VARCHAR(100),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS organisations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			org_type VARCHAR(50),
			country_id UUID REFERENCES countries(id),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS suppliers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			contact_email VARCHAR(255),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS consultants (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			organisation_id UUID REFERENCES organisations(id),
			specialism VARCHAR(255),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS tors (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			workstream_id UUID NOT NULL REFERENCES workstreams(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			objective TEXT,
			scope TEXT,
			status VARCHAR(20) NOT NULL DEFAULT 'Draft',
			estimated_days NUMERIC(10,2) DEFAULT 0,
			estimated_value NUMERIC(14,2) DEFAULT 0,
			approved_by UUID REFERENCES users(id),
			approved_date TIMESTAMP WITH TIME ZONE,
			rejection_reason TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS assignments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			tor_id UUID NOT NULL REFERENCES tors(id) ON DELETE CASCADE,
			consultant_id UUID REFERENCES consultants(id),
			country_id UUID REFERENCES countries(id),
			title VARCHAR(255) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Planned',
			contracted_loe NUMERIC(10,2) DEFAULT 0,
			daily_rate NUMERIC(12,2) DEFAULT 0,
			total_value NUMERIC(14,2) DEFAULT 0,
			start_date DATE,
			end_date DATE,
			mobilised_at TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS loe_entries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			assignment_id UUID NOT NULL REFERENCES assignments(id) ON DELETE CASCADE,
			entry_date DATE NOT NULL,
			days NUMERIC(6,2) NOT NULL,
			description TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS deliverables (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			assignment_id UUID NOT NULL REFERENCES assignments(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			due_date DATE,
			submitted_at TIMESTAMP WITH TIME ZONE,
			status VARCHAR(20) NOT NULL DEFAULT 'Pending',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS fees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			assignment_id UUID NOT NULL REFERENCES assignments(id) ON DELETE CASCADE,
			fee_type VARCHAR(20) NOT NULL,
			amount NUMERIC(14,2) NOT NULL,
			fee_date DATE NOT NULL,
			description TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			assignment_id UUID NOT NULL REFERENCES assignments(id) ON DELETE CASCADE,
			category VARCHAR(100) NOT NULL,
			amount NUMERIC(14,2) NOT NULL,
			expense_date DATE NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Submitted',
			description TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS budgets (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			workstream_id UUID NOT NULL REFERENCES workstreams(id) ON DELETE CASCADE,
			fiscal_year VARCHAR(10) NOT NULL,
			allocated_amount NUMERIC(14,2) DEFAULT 0,
			committed_amount NUMERIC(14,2) DEFAULT 0,
			actual_spend NUMERIC(14,2) DEFAULT 0,
			forecast_spend NUMERIC(14,2) DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			UNIQUE (workstream_id, fiscal_year)
		)`,
		`CREATE TABLE IF NOT EXISTS commitments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			budget_id UUID NOT NULL REFERENCES budgets(id) ON DELETE CASCADE,
			amount NUMERIC(14,2) NOT NULL,
			reference VARCHAR(255),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS invoices (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			assignment_id UUID NOT NULL REFERENCES assignments(id) ON DELETE CASCADE,
			amount NUMERIC(14,2) NOT NULL,
			invoice_date DATE NOT NULL,
			reference VARCHAR(255),
			paid BOOLEAN DEFAULT false,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS indicators (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			workstream_id UUID NOT NULL REFERENCES workstreams(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			unit VARCHAR(50),
			baseline NUMERIC(14,2) DEFAULT 0,
			target NUMERIC(14,2) DEFAULT 0,
			actual NUMERIC(14,2) DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			indicator_id UUID NOT NULL REFERENCES indicators(id) ON DELETE CASCADE,
			value NUMERIC(14,2) NOT NULL,
			result_date DATE NOT NULL,
			notes TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS evidence (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			workstream_id UUID NOT NULL REFERENCES workstreams(id) ON DELETE CASCADE,
			result_id UUID REFERENCES results(id) ON DELETE SET NULL,
			title VARCHAR(255) NOT NULL,
			evidence_type VARCHAR(50),
			url TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS risks (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			workstream_id UUID REFERENCES workstreams(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			likelihood INTEGER NOT NULL,
			impact INTEGER NOT NULL,
			risk_score INTEGER NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Open',
			mitigation TEXT,
			raised_by UUID REFERENCES users(id),
			raised_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS issues (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			workstream_id UUID NOT NULL REFERENCES workstreams(id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			severity VARCHAR(20) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Open',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS decisions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			workstream_id UUID REFERENCES workstreams(id) ON DELETE SET NULL,
			title VARCHAR(255) NOT NULL,
			rationale TEXT,
			decided_by VARCHAR(255),
			decided_at TIMESTAMP WITH TIME ZONE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS lessons (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			workstream_id UUID REFERENCES workstreams(id) ON DELETE SET NULL,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			theme VARCHAR(50),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS safeguarding_incidents (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			country_id UUID REFERENCES countries(id),
			summary TEXT NOT NULL,
			severity VARCHAR(20) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'Reported',
			reported_at TIMESTAMP WITH TIME ZONE NOT NULL,
			action_taken TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS donor_organisations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			donor_type VARCHAR(50),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS donor_projects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			donor_id UUID NOT NULL REFERENCES donor_organisations(id) ON DELETE CASCADE,
			country_id UUID REFERENCES countries(id),
			is_regional BOOLEAN DEFAULT false,
			name VARCHAR(255) NOT NULL,
			sector VARCHAR(100),
			total_budget NUMERIC(14,2) DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'Active',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating table: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_workstreams_programme_id ON workstreams(programme_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tors_workstream_id ON tors(workstream_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tors_status ON tors(status)`,
		`CREATE INDEX IF NOT EXISTS idx_assignments_tor_id ON assignments(tor_id)`,
		`CREATE INDEX IF NOT EXISTS idx_assignments_status ON assignments(status)`,
		`CREATE INDEX IF NOT EXISTS idx_assignments_country_id ON assignments(country_id)`,
		`CREATE INDEX IF NOT EXISTS idx_loe_entries_assignment_id ON loe_entries(assignment_id)`,
		`CREATE INDEX IF NOT EXISTS idx_deliverables_assignment_id ON deliverables(assignment_id)`,
		`CREATE INDEX IF NOT EXISTS idx_fees_assignment_id ON fees(assignment_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_assignment_id ON expenses(assignment_id)`,
		`CREATE INDEX IF NOT EXISTS idx_budgets_workstream_id ON budgets(workstream_id)`,
		`CREATE INDEX IF NOT EXISTS idx_indicators_workstream_id ON indicators(workstream_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_indicator_id ON results(indicator_id)`,
		`CREATE INDEX IF NOT EXISTS idx_risks_workstream_id ON risks(workstream_id)`,
		`CREATE INDEX IF NOT EXISTS idx_risks_raised_at ON risks(raised_at)`,
		`CREATE INDEX IF NOT EXISTS idx_donor_projects_donor_id ON donor_projects(donor_id)`,
		`CREATE INDEX IF NOT EXISTS idx_donor_projects_country_id ON donor_projects(country_id)`,
	}

	for _, m := range indexes {
		if _, err := db.Exec(m); err != nil {
			log.Printf("Error creating index: %v", err)
		}
	}

	return nil
}
