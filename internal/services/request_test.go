package services

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/maitriparekhcs2848/GearGuard/internal/dto"
	"github.com/maitriparekhcs2848/GearGuard/internal/entities"
	"github.com/maitriparekhcs2848/GearGuard/internal/repositories"
	"github.com/maitriparekhcs2848/GearGuard/pkg/constants"
	apperrors "github.com/maitriparekhcs2848/GearGuard/pkg/errors"
	"github.com/maitriparekhcs2848/GearGuard/pkg/utils"
)

type lifecycleFixture struct {
	store   *repositories.MemoryStore
	svc     *RequestService
	clock   time.Time
	teamID  string
	mill    string // healthy equipment assigned to teamID
	press   string // second healthy equipment, different team
	scrapped string // scrapped equipment
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()
	ctx := context.Background()
	store := repositories.NewMemoryStore()

	f := &lifecycleFixture{
		store: store,
		clock: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	f.teamID = uuid.NewString()
	otherTeam := uuid.NewString()
	require.NoError(t, store.CreateTeam(ctx, entities.Team{ID: f.teamID, Name: "Mechanics A", Specialization: "Mechanical", CreatedAt: f.clock}))
	require.NoError(t, store.CreateTeam(ctx, entities.Team{ID: otherTeam, Name: "Electrics", Specialization: "Electrical", CreatedAt: f.clock}))

	f.mill = uuid.NewString()
	f.press = uuid.NewString()
	f.scrapped = uuid.NewString()
	require.NoError(t, store.CreateEquipment(ctx, entities.Equipment{ID: f.mill, Name: "CNC Mill", TeamID: f.teamID, CreatedAt: f.clock}))
	require.NoError(t, store.CreateEquipment(ctx, entities.Equipment{ID: f.press, Name: "Hydraulic Press", TeamID: otherTeam, CreatedAt: f.clock}))
	require.NoError(t, store.CreateEquipment(ctx, entities.Equipment{ID: f.scrapped, Name: "Old Crusher", TeamID: f.teamID, IsScrap: true, CreatedAt: f.clock}))

	f.svc = NewRequestService(store, store, zap.NewNop())
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func (f *lifecycleFixture) advance(d time.Duration) { f.clock = f.clock.Add(d) }

func (f *lifecycleFixture) maintenanceCount(t *testing.T, equipmentID string) int {
	t.Helper()
	e, err := f.store.FindEquipment(context.Background(), equipmentID)
	require.NoError(t, err)
	return e.MaintenanceCount
}

func (f *lifecycleFixture) storedRequest(t *testing.T, id string) entities.Request {
	t.Helper()
	r, err := f.store.FindRequest(context.Background(), id)
	require.NoError(t, err)
	return *r
}

func TestCreateRequest_DefaultsFromEquipment(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	got, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{EquipmentID: f.mill})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, constants.StatusNew, got.Status)
	assert.Equal(t, constants.DefaultRequestType, got.Type)
	assert.Equal(t, constants.DefaultRequestPriority, got.Priority)
	assert.Equal(t, f.mill, got.EquipmentID)
	assert.Equal(t, f.teamID, got.TeamID, "team must default to the equipment's team")

	assert.Equal(t, 1, f.maintenanceCount(t, f.mill))
	assert.Equal(t, 0, f.maintenanceCount(t, f.press), "counter moves only on the referenced equipment")
}

func TestCreateRequest_CallerFieldsWin(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	otherTeam := uuid.NewString()
	require.NoError(t, f.store.CreateTeam(ctx, entities.Team{ID: otherTeam, Name: "Night Shift", CreatedAt: f.clock}))

	scheduled := f.clock.Add(72 * time.Hour)
	got, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{
		EquipmentID:   f.mill,
		Subject:       utils.ToPtr("Spindle noise"),
		Type:          utils.ToPtr(constants.RequestTypePreventive),
		Priority:      utils.ToPtr(constants.PriorityHigh),
		ScheduledDate: &scheduled,
		TeamID:        &otherTeam,
	})
	require.NoError(t, err)

	assert.Equal(t, "Spindle noise", got.Subject)
	assert.Equal(t, constants.RequestTypePreventive, got.Type)
	assert.Equal(t, constants.PriorityHigh, got.Priority)
	assert.Equal(t, otherTeam, got.TeamID, "an explicit team beats the equipment's team")
	assert.Equal(t, constants.StatusNew, got.Status, "status is never caller-controlled")
}

func TestCreateRequest_UnknownEquipment(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	got, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{EquipmentID: uuid.NewString()})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrEquipmentReference)

	_, total, err := f.store.GetRequests(ctx, repositories.RequestFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, total, "nothing may be persisted on a failed reference check")
}

func TestCreateRequest_ScrappedEquipment(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	got, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{EquipmentID: f.scrapped})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrEquipmentScrapped)

	assert.Equal(t, 0, f.maintenanceCount(t, f.scrapped))
	_, total, err := f.store.GetRequests(ctx, repositories.RequestFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCreateRequest_CounterFailureIsPartialCommit(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	f.store.FailNextIncrement(fmt.Errorf("disk full"))

	got, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{EquipmentID: f.mill})
	assert.Nil(t, got)

	var partial *apperrors.PartialCommitError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, f.mill, partial.EquipmentID)
	assert.NotEmpty(t, partial.RequestID)

	// the request write already happened and is not rolled back
	stored := f.storedRequest(t, partial.RequestID)
	assert.Equal(t, constants.StatusNew, stored.Status)
	assert.Equal(t, 0, f.maintenanceCount(t, f.mill))

	// the failure is one-shot, the next create goes through cleanly
	_, err = f.svc.CreateRequest(ctx, dto.CreateRequestDTO{EquipmentID: f.mill})
	require.NoError(t, err)
	assert.Equal(t, 1, f.maintenanceCount(t, f.mill))
}

func TestTransitionStatus_FullLifecycle(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{EquipmentID: f.mill})
	require.NoError(t, err)
	createdAt := f.clock

	f.advance(time.Hour)
	got, err := f.svc.TransitionStatus(ctx, created.ID, constants.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusInProgress, got.Status)
	assert.Equal(t, createdAt.Add(time.Hour), f.storedRequest(t, created.ID).UpdatedAt)

	f.advance(time.Hour)
	got, err = f.svc.TransitionStatus(ctx, created.ID, constants.StatusScrap)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusScrap, got.Status)
	assert.Equal(t, createdAt.Add(2*time.Hour), f.storedRequest(t, created.ID).UpdatedAt)
}

func TestTransitionStatus_SkippingAStageFails(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{EquipmentID: f.mill})
	require.NoError(t, err)
	before := f.storedRequest(t, created.ID)

	f.advance(time.Hour)
	got, err := f.svc.TransitionStatus(ctx, created.ID, constants.StatusRepaired)
	assert.Nil(t, got)

	var invalid *apperrors.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, constants.StatusNew, invalid.From)
	assert.Equal(t, constants.StatusRepaired, invalid.To)

	after := f.storedRequest(t, created.ID)
	assert.Equal(t, before.Status, after.Status, "a rejected transition must not touch the record")
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt, "updated_at only moves on success")
}

func TestTransitionStatus_TerminalStatesAreFinal(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{EquipmentID: f.mill})
	require.NoError(t, err)
	_, err = f.svc.TransitionStatus(ctx, created.ID, constants.StatusInProgress)
	require.NoError(t, err)
	_, err = f.svc.TransitionStatus(ctx, created.ID, constants.StatusRepaired)
	require.NoError(t, err)

	for _, target := range constants.AllStatuses {
		_, err := f.svc.TransitionStatus(ctx, created.ID, target)
		var invalid *apperrors.InvalidTransitionError
		require.ErrorAsf(t, err, &invalid, "Repaired -> %s must be rejected", target)
	}
}

func TestTransitionStatus_UnknownRequest(t *testing.T) {
	f := newLifecycleFixture(t)

	_, err := f.svc.TransitionStatus(context.Background(), uuid.NewString(), constants.StatusInProgress)
	assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
}

// Random walks over the status graph: the service must accept exactly the
// moves the table allows, and the stored status must track every accepted move.
func TestTransitionStatus_RandomWalks(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(1))

	for walk := 0; walk < 50; walk++ {
		created, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{EquipmentID: f.mill})
		require.NoError(t, err)

		expected := constants.StatusNew
		for step := 0; step < 10; step++ {
			target := constants.AllStatuses[rng.Intn(len(constants.AllStatuses))]
			_, err := f.svc.TransitionStatus(ctx, created.ID, target)
			if constants.CanTransition(expected, target) {
				require.NoErrorf(t, err, "walk %d step %d: %s -> %s", walk, step, expected, target)
				expected = target
			} else {
				var invalid *apperrors.InvalidTransitionError
				require.ErrorAsf(t, err, &invalid, "walk %d step %d: %s -> %s", walk, step, expected, target)
				assert.Equal(t, expected, invalid.From)
				assert.Equal(t, target, invalid.To)
			}
			assert.Equal(t, expected, f.storedRequest(t, created.ID).Status)
		}
	}
}

func TestOverrideStatus_SkipsTheTable(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{EquipmentID: f.mill})
	require.NoError(t, err)

	// New -> Repaired is off the table but the override allows it
	got, err := f.svc.OverrideStatus(ctx, created.ID, constants.StatusRepaired)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusRepaired, got.Status)

	// even the override refuses codes outside the known set
	_, err = f.svc.OverrideStatus(ctx, created.ID, "Done")
	var input *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &input)
	assert.Equal(t, constants.StatusRepaired, f.storedRequest(t, created.ID).Status)
}

func TestUpdateRequest_MergeSemantics(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{
		EquipmentID: f.mill,
		Subject:     utils.ToPtr("Original subject"),
		Description: utils.ToPtr("Original description"),
	})
	require.NoError(t, err)

	f.advance(time.Hour)
	got, err := f.svc.UpdateRequest(ctx, created.ID, dto.UpdateRequestDTO{
		Priority:   utils.ToPtr(constants.PriorityHigh),
		AssignedTo: utils.ToPtr("j.brandt"),
	})
	require.NoError(t, err)

	assert.Equal(t, constants.PriorityHigh, got.Priority)
	assert.Equal(t, "j.brandt", got.AssignedTo)
	assert.Equal(t, "Original subject", got.Subject, "omitted fields stay untouched")
	assert.Equal(t, "Original description", got.Description)
	assert.Equal(t, constants.StatusNew, got.Status, "the update path never changes status")
}

func TestUpdateRequest_EmptyPayloadStillStampsUpdatedAt(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{EquipmentID: f.mill})
	require.NoError(t, err)
	before := f.storedRequest(t, created.ID)

	f.advance(time.Minute)
	_, err = f.svc.UpdateRequest(ctx, created.ID, dto.UpdateRequestDTO{})
	require.NoError(t, err)

	after := f.storedRequest(t, created.ID)
	assert.Equal(t, before.Subject, after.Subject)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt), "updated_at is stamped on every successful update")
}

func TestUpdateRequest_UnknownRequest(t *testing.T) {
	f := newLifecycleFixture(t)

	_, err := f.svc.UpdateRequest(context.Background(), uuid.NewString(), dto.UpdateRequestDTO{})
	assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
}

func TestGetRequests_FilterByStatusAndEquipment(t *testing.T) {
	f := newLifecycleFixture(t)
	ctx := context.Background()

	a, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{EquipmentID: f.mill})
	require.NoError(t, err)
	f.advance(time.Second)
	_, err = f.svc.CreateRequest(ctx, dto.CreateRequestDTO{EquipmentID: f.press})
	require.NoError(t, err)
	_, err = f.svc.TransitionStatus(ctx, a.ID, constants.StatusInProgress)
	require.NoError(t, err)

	list, total, err := f.svc.GetRequests(ctx, repositories.RequestFilter{Status: constants.StatusInProgress}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)

	list, total, err = f.svc.GetRequests(ctx, repositories.RequestFilter{EquipmentID: f.press}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, f.press, list[0].EquipmentID)
}
