package tors

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sage-backend/app/apperr"
	"sage-backend/app/models"
)

// fakeToRStore mirrors the sqlStore contract: a guarded write that
// matches no row reports sql.ErrNoRows, stamps overwrite only when set.
type fakeToRStore struct {
	tors map[string]*models.ToR
}

func (f *fakeToRStore) Status(id string) (string, error) {
	t, ok := f.tors[id]
	if !ok {
		return "", apperr.NotFound("tor")
	}
	return t.Status, nil
}

func (f *fakeToRStore) UpdateFields(t *models.ToR) (*models.ToR, error) {
	cur, ok := f.tors[t.ID]
	if !ok || !isEditable(cur.Status) {
		return nil, sql.ErrNoRows
	}
	cur.Title = t.Title
	cur.Objective = t.Objective
	cur.Scope = t.Scope
	cur.EstimatedDays = t.EstimatedDays
	cur.EstimatedValue = t.EstimatedValue
	cur.WorkstreamID = t.WorkstreamID
	return cur, nil
}

func (f *fakeToRStore) Transition(id, from, to string, st stamps) (*models.ToR, error) {
	t, ok := f.tors[id]
	if !ok || t.Status != from {
		return nil, sql.ErrNoRows
	}
	t.Status = to
	if st.ApprovedBy != nil {
		t.ApprovedBy = st.ApprovedBy
	}
	if st.ApprovedDate != nil {
		t.ApprovedDate = st.ApprovedDate
	}
	if st.RejectionReason != nil {
		t.RejectionReason = *st.RejectionReason
	}
	return t, nil
}

func (f *fakeToRStore) Delete(id, from string) (int64, error) {
	t, ok := f.tors[id]
	if !ok || t.Status != from {
		return 0, nil
	}
	delete(f.tors, id)
	return 1, nil
}

func newFakeService(status string) (*service, *fakeToRStore) {
	store := &fakeToRStore{tors: map[string]*models.ToR{
		"t1": {ID: "t1", Title: "Evaluation design", Status: status},
	}}
	svc := newService(store)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	}
	return svc, store
}

func TestWorkflowIsStrictlyLinear(t *testing.T) {
	submit, ok := workflowActions["submit"]
	require.True(t, ok)
	assert.Equal(t, models.ToRStatusQA, submit.From)
	assert.Equal(t, models.ToRStatusPendingApproval, submit.To)

	approve, ok := workflowActions["approve"]
	require.True(t, ok)
	assert.Equal(t, models.ToRStatusPendingApproval, approve.From)
	assert.Equal(t, models.ToRStatusApproved, approve.To)

	reject, ok := workflowActions["reject"]
	require.True(t, ok)
	assert.Equal(t, models.ToRStatusPendingApproval, reject.From)
	assert.Equal(t, models.ToRStatusRejected, reject.To)

	// No action leads out of a terminal status.
	for _, action := range workflowActions {
		assert.NotEqual(t, models.ToRStatusApproved, action.From)
		assert.NotEqual(t, models.ToRStatusRejected, action.From)
	}

	// Submit from Draft must fail: no action accepts Draft as its source.
	for _, action := range workflowActions {
		assert.NotEqual(t, models.ToRStatusDraft, action.From)
	}
}

func TestEditableStatuses(t *testing.T) {
	assert.True(t, isEditable(models.ToRStatusDraft))
	assert.True(t, isEditable(models.ToRStatusQA))
	assert.False(t, isEditable(models.ToRStatusPendingApproval))
	assert.False(t, isEditable(models.ToRStatusApproved))
	assert.False(t, isEditable(models.ToRStatusRejected))
}

func TestCreateForcesDraftStatus(t *testing.T) {
	vals := torEntity.InsertVals(&models.ToR{
		WorkstreamID: "w1",
		Title:        "Evaluation design",
		Status:       models.ToRStatusApproved, // client-supplied, must be ignored
	})
	require.Len(t, vals, len(torEntity.InsertCols))
	assert.Equal(t, models.ToRStatusDraft, vals[4])
}

func TestSubmitMovesQAToPendingApproval(t *testing.T) {
	svc, _ := newFakeService(models.ToRStatusQA)

	updated, err := svc.Submit("t1")
	require.NoError(t, err)
	assert.Equal(t, models.ToRStatusPendingApproval, updated.Status)
	assert.Nil(t, updated.ApprovedBy)
	assert.Nil(t, updated.ApprovedDate)
}

func TestSubmitFromDraftIsInvalidState(t *testing.T) {
	svc, store := newFakeService(models.ToRStatusDraft)

	_, err := svc.Submit("t1")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindInvalidState, ae.Kind)
	assert.Contains(t, ae.Message, models.ToRStatusDraft)
	assert.Equal(t, models.ToRStatusDraft, store.tors["t1"].Status)
}

func TestApproveStampsActorAndDate(t *testing.T) {
	svc, _ := newFakeService(models.ToRStatusPendingApproval)

	updated, err := svc.Approve("t1", "u1")
	require.NoError(t, err)
	assert.Equal(t, models.ToRStatusApproved, updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, "u1", *updated.ApprovedBy)
	require.NotNil(t, updated.ApprovedDate)
	assert.Equal(t, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC), *updated.ApprovedDate)
	assert.Empty(t, updated.RejectionReason)
}

func TestRejectStampsActorDateAndReason(t *testing.T) {
	svc, _ := newFakeService(models.ToRStatusPendingApproval)

	updated, err := svc.Reject("t1", "u2", "budget exceeds envelope")
	require.NoError(t, err)
	assert.Equal(t, models.ToRStatusRejected, updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, "u2", *updated.ApprovedBy)
	require.NotNil(t, updated.ApprovedDate)
	assert.Equal(t, "budget exceeds envelope", updated.RejectionReason)
}

func TestApproveOutsidePendingApprovalIsInvalidState(t *testing.T) {
	for _, status := range []string{
		models.ToRStatusDraft, models.ToRStatusQA,
		models.ToRStatusApproved, models.ToRStatusRejected,
	} {
		svc, _ := newFakeService(status)

		_, err := svc.Approve("t1", "u1")
		var ae *apperr.Error
		require.ErrorAs(t, err, &ae, status)
		assert.Equal(t, apperr.KindInvalidState, ae.Kind, status)
		assert.Contains(t, ae.Message, status)
	}
}

func TestTransitionOnMissingToRIsNotFound(t *testing.T) {
	svc := newService(&fakeToRStore{tors: map[string]*models.ToR{}})

	_, err := svc.Approve("absent", "u1")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindNotFound, ae.Kind)

	err = svc.Delete("absent")
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindNotFound, ae.Kind)
}

func TestDeleteOnlyFromDraft(t *testing.T) {
	svc, store := newFakeService(models.ToRStatusQA)
	err := svc.Delete("t1")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindInvalidState, ae.Kind)
	assert.Contains(t, store.tors, "t1")

	svc, store = newFakeService(models.ToRStatusDraft)
	require.NoError(t, svc.Delete("t1"))
	assert.NotContains(t, store.tors, "t1")
}

func TestToRValidationBounds(t *testing.T) {
	valid := models.ToR{
		WorkstreamID:  "2f0c9a34-6c1a-4b9e-8a58-3f6f2d9b7c11",
		Title:         "Evaluation design",
		EstimatedDays: 20,
	}
	assert.NoError(t, validate.Struct(valid))

	negativeDays := valid
	negativeDays.EstimatedDays = -5
	assert.Error(t, validate.Struct(negativeDays))

	missingTitle := valid
	missingTitle.Title = ""
	assert.Error(t, validate.Struct(missingTitle))
}

func TestUpdateGuardedToEditableStatuses(t *testing.T) {
	svc, _ := newFakeService(models.ToRStatusApproved)
	_, err := svc.Update(&models.ToR{ID: "t1", Title: "Revised scope"})
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apperr.KindInvalidState, ae.Kind)

	svc, store := newFakeService(models.ToRStatusQA)
	updated, err := svc.Update(&models.ToR{ID: "t1", Title: "Revised scope", WorkstreamID: "w1"})
	require.NoError(t, err)
	assert.Equal(t, "Revised scope", updated.Title)
	assert.Equal(t, models.ToRStatusQA, store.tors["t1"].Status)
}
