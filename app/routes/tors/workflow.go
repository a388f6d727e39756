package tors

import (
	"database/sql"
	"errors"
	"time"

	"sage-backend/app/apperr"
	"sage-backend/app/models"
)

// The approval workflow is strictly linear with no skips:
// Draft -> QA -> Pending Approval -> Approved | Rejected.
// Each transition is guarded on the exact current status, and the guard
// is enforced inside the store's conditional update so concurrent calls
// cannot both pass it.

type transition struct {
	From string
	To   string
}

var workflowActions = map[string]transition{
	"submit":  {From: models.ToRStatusQA, To: models.ToRStatusPendingApproval},
	"approve": {From: models.ToRStatusPendingApproval, To: models.ToRStatusApproved},
	"reject":  {From: models.ToRStatusPendingApproval, To: models.ToRStatusRejected},
}

// editableStatuses are the only statuses in which free-form field
// updates are permitted. Deletion is permitted from Draft only.
var editableStatuses = []string{models.ToRStatusDraft, models.ToRStatusQA}

func isEditable(status string) bool {
	for _, s := range editableStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// stamps carries the audit fields written alongside a status change.
// Nil fields are left untouched.
type stamps struct {
	ApprovedBy      *string
	ApprovedDate    *time.Time
	RejectionReason *string
}

// service drives the workflow against a store. The service decides the
// transition and its stamps; the store enforces the status guard.
type service struct {
	store store
	now   func() time.Time
}

func newService(store store) *service {
	return &service{store: store, now: time.Now}
}

func (s *service) Submit(id string) (*models.ToR, error) {
	return s.apply(id, "submit", stamps{})
}

func (s *service) Approve(id, userID string) (*models.ToR, error) {
	at := s.now()
	return s.apply(id, "approve", stamps{ApprovedBy: &userID, ApprovedDate: &at})
}

func (s *service) Reject(id, userID, reason string) (*models.ToR, error) {
	at := s.now()
	return s.apply(id, "reject", stamps{
		ApprovedBy:      &userID,
		ApprovedDate:    &at,
		RejectionReason: &reason,
	})
}

func (s *service) apply(id, action string, st stamps) (*models.ToR, error) {
	tr := workflowActions[action]
	t, err := s.store.Transition(id, tr.From, tr.To, st)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, s.guardFailure(id, action)
	}
	return t, err
}

// Update writes editable fields; the stored status and stamps are never
// touched here.
func (s *service) Update(t *models.ToR) (*models.ToR, error) {
	updated, err := s.store.UpdateFields(t)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, s.guardFailure(t.ID, "update")
	}
	return updated, err
}

// Delete hard-deletes, permitted from Draft only.
func (s *service) Delete(id string) error {
	n, err := s.store.Delete(id, models.ToRStatusDraft)
	if err != nil {
		return err
	}
	if n == 0 {
		return s.guardFailure(id, "delete")
	}
	return nil
}

// guardFailure distinguishes a missing row from a workflow guard miss:
// the status re-read either 404s or names the offending status.
func (s *service) guardFailure(id, action string) error {
	status, err := s.store.Status(id)
	if err != nil {
		return err
	}
	return apperr.InvalidState("cannot %s tor in status %q", action, status)
}
